package user

import (
	"regexp"
	"strings"

	"shareit/internal/pkg/errs"
)

var (
	ErrInvalidEmail   = errs.Validation("invalid email format")
	ErrEmailDuplicate = errs.Conflict("email already in use")
)

// maxEmailLen matches the users.email column.
const maxEmailLen = 512

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is a syntactically valid address. Uniqueness is enforced by the store.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	s := strings.TrimSpace(raw)
	if len(s) > maxEmailLen || !emailPattern.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string { return e.value }
