package commands

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type CreateItemRequest struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

type UpdateItemRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type CreateItemResult struct {
	ItemID int64
}

type ItemCommands interface {
	Create(ctx context.Context, ownerID int64, req CreateItemRequest) (*CreateItemResult, error)
	Update(ctx context.Context, ownerID, itemID int64, req UpdateItemRequest) error
	Delete(ctx context.Context, ownerID, itemID int64) error
}

type itemUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewItemUseCase(uow shared.UnitOfWork) ItemCommands {
	return &itemUseCaseImpl{uow: uow}
}

type itemDraft struct {
	Name        string
	Description string
	Available   bool
}

func (uc *itemUseCaseImpl) Create(ctx context.Context, ownerID int64, req CreateItemRequest) (*CreateItemResult, error) {
	it, err := item.NewItem(ownerID, req.Name, req.Description, req.Available, req.RequestID)
	if err != nil {
		return nil, err
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, ownerID); derr != nil {
			return orNotFound(derr, ErrUserNotFound)
		}
		id, derr := tx.Items().Create(ctx, tx.DB(), it)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateItemResult{ItemID: createdID}, nil
}

func (uc *itemUseCaseImpl) Update(ctx context.Context, ownerID, itemID int64, req UpdateItemRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := tx.Items().FindByID(ctx, tx.DB(), itemID)
		if err != nil {
			return orNotFound(err, ErrItemNotFound)
		}
		if !it.IsOwnedBy(ownerID) {
			return item.ErrNotOwner
		}

		draft := itemDraft{Name: it.Name(), Description: it.Description(), Available: it.Available()}
		if err = copier.CopyWithOption(&draft, &req, copier.Option{IgnoreEmpty: true}); err != nil {
			return err
		}

		if err = it.Rename(draft.Name); err != nil {
			return err
		}
		if err = it.Describe(draft.Description); err != nil {
			return err
		}
		it.SetAvailable(draft.Available)

		if err = tx.Items().Update(ctx, tx.DB(), it); err != nil {
			return orNotFound(err, ErrItemNotFound)
		}
		return nil
	})
}

func (uc *itemUseCaseImpl) Delete(ctx context.Context, ownerID, itemID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := tx.Items().FindByID(ctx, tx.DB(), itemID)
		if err != nil {
			return orNotFound(err, ErrItemNotFound)
		}
		if !it.IsOwnedBy(ownerID) {
			return item.ErrNotOwner
		}
		if err = tx.Items().Delete(ctx, tx.DB(), itemID); err != nil {
			return orNotFound(err, ErrItemNotFound)
		}
		return nil
	})
}
