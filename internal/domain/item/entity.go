package item

import (
	"strings"

	"shareit/internal/pkg/errs"
)

var (
	ErrBlankName        = errs.Validation("item name must not be blank")
	ErrBlankDescription = errs.Validation("item description must not be blank")
	ErrNotOwner         = errs.Forbidden("only the owner can change the item")
	ErrUnavailable      = errs.Validation("item unavailable")
)

type Item struct {
	id          int64
	ownerID     int64
	name        string
	description string
	available   bool
	requestID   *int64
}

func NewItem(ownerID int64, name, description string, available bool, requestID *int64) (*Item, error) {
	i := &Item{ownerID: ownerID, available: available, requestID: requestID}
	if err := i.Rename(name); err != nil {
		return nil, err
	}
	if err := i.Describe(description); err != nil {
		return nil, err
	}
	return i, nil
}

func ReconstructItem(id, ownerID int64, name, description string, available bool, requestID *int64) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
	}
}

func (i *Item) ID() int64           { return i.id }
func (i *Item) OwnerID() int64      { return i.ownerID }
func (i *Item) Name() string        { return i.name }
func (i *Item) Description() string { return i.description }
func (i *Item) Available() bool     { return i.available }
func (i *Item) RequestID() *int64   { return i.requestID }

func (i *Item) IsOwnedBy(userID int64) bool {
	return i.ownerID == userID
}

// EnsureBookable rejects booking requests for items the owner has withdrawn.
func (i *Item) EnsureBookable() error {
	if !i.available {
		return ErrUnavailable
	}
	return nil
}

func (i *Item) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	i.name = name
	return nil
}

func (i *Item) Describe(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return ErrBlankDescription
	}
	i.description = description
	return nil
}

func (i *Item) SetAvailable(available bool) {
	i.available = available
}
