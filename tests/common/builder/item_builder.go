//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/item"
	"shareit/internal/handler/dto/request"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ItemBuilder struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:          10,
		OwnerID:     1,
		Name:        "Drill",
		Description: "Cordless drill with two batteries",
		Available:   true,
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) BuildDomain() (*item.Item, error) {
	return item.NewItem(b.OwnerID, b.Name, b.Description, b.Available, b.RequestID)
}

func (b *ItemBuilder) BuildStored() *item.Item {
	return item.ReconstructItem(b.ID, b.OwnerID, b.Name, b.Description, b.Available, b.RequestID)
}

func (b *ItemBuilder) BuildInfra() sqlc.Items {
	now := time.Now()
	requestID := pgtype.Int8{}
	if b.RequestID != nil {
		requestID = pgtype.Int8{Int64: *b.RequestID, Valid: true}
	}
	return sqlc.Items{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
		RequestID:   requestID,
		CreatedAt:   pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
		RequestID:   b.RequestID,
		Comments:    []*queries.CommentView{},
	}
}

func (b *ItemBuilder) BuildCreateRequestDTO() request.CreateItemRequest {
	available := b.Available
	return request.CreateItemRequest{
		Name:        b.Name,
		Description: b.Description,
		Available:   &available,
		RequestID:   b.RequestID,
	}
}

func (b *ItemBuilder) WithID(id int64) *ItemBuilder {
	b.ID = id
	return b
}

func (b *ItemBuilder) WithOwnerID(ownerID int64) *ItemBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.Name = name
	return b
}

func (b *ItemBuilder) WithDescription(description string) *ItemBuilder {
	b.Description = description
	return b
}

func (b *ItemBuilder) Unavailable() *ItemBuilder {
	b.Available = false
	return b
}
