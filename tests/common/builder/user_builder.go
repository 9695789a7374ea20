//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/user"
	"shareit/internal/handler/dto/request"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID    int64
	Name  string
	Email string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    1,
		Name:  "Alice",
		Email: "alice@example.com",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(u.Name, email)
}

// BuildStored returns the user as loaded from storage, id included.
func (u *UserBuilder) BuildStored() *user.User {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		panic(err)
	}
	return user.ReconstructUser(u.ID, u.Name, email)
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	return sqlc.Users{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (u *UserBuilder) BuildCreateRequestDTO() request.CreateUserRequest {
	return request.CreateUserRequest{Name: u.Name, Email: u.Email}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}
