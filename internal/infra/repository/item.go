package repository

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/infra/repository/converter"
	sqlc "shareit/internal/infra/sqlc/generated"
)

type ItemWriteQueries interface {
	CreateItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateItemParams) (int64, error)
	UpdateItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateItemParams) (int64, error)
	DeleteItem(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	FindItemByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Items, error)
	LockItemByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Items, error)
}

type ItemRepository struct {
	queries ItemWriteQueries
}

func NewItemRepository(queries ItemWriteQueries) *ItemRepository {
	return &ItemRepository{queries: queries}
}

func (r *ItemRepository) Create(ctx context.Context, tx sqlc.DBTX, it *item.Item) (int64, error) {
	id, err := r.queries.CreateItem(ctx, tx, converter.ItemToCreateParams(it))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create item", err)
	}
	return id, nil
}

func (r *ItemRepository) Update(ctx context.Context, tx sqlc.DBTX, it *item.Item) error {
	affected, err := r.queries.UpdateItem(ctx, tx, converter.ItemToUpdateParams(it))
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, tx sqlc.DBTX, itemID int64) error {
	affected, err := r.queries.DeleteItem(ctx, tx, itemID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) FindByID(ctx context.Context, tx sqlc.DBTX, itemID int64) (*item.Item, error) {
	row, err := r.queries.FindItemByID(ctx, tx, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find item by id", err)
	}
	return converter.ItemFromRow(row), nil
}

func (r *ItemRepository) LockByID(ctx context.Context, tx sqlc.DBTX, itemID int64) (*item.Item, error) {
	row, err := r.queries.LockItemByID(ctx, tx, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock item", err)
	}
	return converter.ItemFromRow(row), nil
}
