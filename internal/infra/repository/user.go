package repository

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/infra/repository/converter"
	sqlc "shareit/internal/infra/sqlc/generated"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (int64, error)
	UpdateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserParams) (int64, error)
	DeleteUser(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	FindUserByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Users, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (int64, error) {
	id, err := r.queries.CreateUser(ctx, tx, sqlc.CreateUserParams{
		Name:  u.Name(),
		Email: u.Email().Value(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) Update(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	affected, err := r.queries.UpdateUser(ctx, tx, sqlc.UpdateUserParams{
		ID:    u.ID(),
		Name:  u.Name(),
		Email: u.Email().Value(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, tx sqlc.DBTX, userID int64) error {
	affected, err := r.queries.DeleteUser(ctx, tx, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, tx sqlc.DBTX, userID int64) (*user.User, error) {
	row, err := r.queries.FindUserByID(ctx, tx, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user is invalid", err, infra.KindDBFailure)
	}
	return u, nil
}
