package converter

import (
	"shareit/internal/domain/item"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
)

func ItemToCreateParams(it *item.Item) sqlc.CreateItemParams {
	return sqlc.CreateItemParams{
		OwnerID:     it.OwnerID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		RequestID:   pgconv.Int64PtrToPgtype(it.RequestID()),
	}
}

func ItemToUpdateParams(it *item.Item) sqlc.UpdateItemParams {
	return sqlc.UpdateItemParams{
		ID:          it.ID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
	}
}

func ItemFromRow(row sqlc.Items) *item.Item {
	return item.ReconstructItem(
		row.ID,
		row.OwnerID,
		row.Name,
		row.Description,
		row.Available,
		pgconv.Int64PtrFromPgtype(row.RequestID),
	)
}
