package commands

import (
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
)

var (
	ErrUserNotFound    = errs.NotFound("user not found")
	ErrItemNotFound    = errs.NotFound("item not found")
	ErrBookingNotFound = errs.NotFound("booking not found")
	ErrNotItemOwner    = errs.Forbidden("only the item owner can decide on a booking")
)

// orNotFound replaces a repository not-found error with the caller's domain error.
func orNotFound(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return err
}
