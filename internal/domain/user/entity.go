package user

import (
	"strings"

	"shareit/internal/pkg/errs"
)

var ErrBlankName = errs.Validation("user name must not be blank")

type User struct {
	id    int64
	name  string
	email Email
}

// NewUser builds a user that has not been stored yet; the store assigns the id.
func NewUser(name string, email Email) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBlankName
	}
	return &User{name: name, email: email}, nil
}

func ReconstructUser(id int64, name string, email Email) *User {
	return &User{id: id, name: name, email: email}
}

func (u *User) ID() int64    { return u.id }
func (u *User) Name() string { return u.name }
func (u *User) Email() Email { return u.email }

func (u *User) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	u.name = name
	return nil
}

func (u *User) ChangeEmail(email Email) {
	u.email = email
}
