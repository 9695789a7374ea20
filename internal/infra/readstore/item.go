package readstore

import (
	"context"
	"strings"
	"time"

	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

type ItemReadQueries interface {
	FindItemByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Items, error)
	ListLastBookingsForItems(ctx context.Context, db sqlc.DBTX, arg sqlc.ListLastBookingsForItemsParams) ([]sqlc.ListLastBookingsForItemsRow, error)
	ListNextBookingsForItems(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNextBookingsForItemsParams) ([]sqlc.ListNextBookingsForItemsRow, error)
	ListCommentsByItems(ctx context.Context, db sqlc.DBTX, itemIds []int64) ([]sqlc.ListCommentsByItemsRow, error)
}

type ItemReadStore struct {
	queries ItemReadQueries
	db      sqlc.DBTX
}

func NewItemReadStore(queries ItemReadQueries, db sqlc.DBTX) *ItemReadStore {
	return &ItemReadStore{
		queries: queries,
		db:      db,
	}
}

var itemColumns = []any{"id", "owner_id", "name", "description", "available", "request_id"}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *ItemReadStore) FindByID(ctx context.Context, id int64) (*queries.ItemView, error) {
	row, err := r.queries.FindItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by id", err)
	}
	return &queries.ItemView{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Name:        row.Name,
		Description: row.Description,
		Available:   row.Available,
		RequestID:   pgconv.Int64PtrFromPgtype(row.RequestID),
	}, nil
}

func (r *ItemReadStore) ListByOwner(ctx context.Context, ownerID int64, page queries.Page) ([]*queries.ItemView, error) {
	query, args, err := buildItemListSQL(goqu.C("owner_id").Eq(ownerID), page)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item list query", err, infra.KindDBFailure)
	}
	return r.selectItems(ctx, query, args)
}

func (r *ItemReadStore) Search(ctx context.Context, text string, page queries.Page) ([]*queries.ItemView, error) {
	query, args, err := buildItemListSQL(searchExpression(text), page)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item search query", err, infra.KindDBFailure)
	}
	return r.selectItems(ctx, query, args)
}

func (r *ItemReadStore) BookingBounds(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]*queries.BookingShortView, map[int64]*queries.BookingShortView, error) {
	lastRows, err := r.queries.ListLastBookingsForItems(ctx, r.db, sqlc.ListLastBookingsForItemsParams{
		ItemIds: itemIDs,
		Now:     pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to list last bookings", err)
	}
	nextRows, err := r.queries.ListNextBookingsForItems(ctx, r.db, sqlc.ListNextBookingsForItemsParams{
		ItemIds: itemIDs,
		Now:     pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to list next bookings", err)
	}

	last := make(map[int64]*queries.BookingShortView, len(lastRows))
	for _, row := range lastRows {
		last[row.ItemID] = &queries.BookingShortView{
			ID:       row.ID,
			BookerID: row.BookerID,
			Start:    pgconv.TimeFromPgtype(row.StartDate),
			End:      pgconv.TimeFromPgtype(row.EndDate),
		}
	}
	next := make(map[int64]*queries.BookingShortView, len(nextRows))
	for _, row := range nextRows {
		next[row.ItemID] = &queries.BookingShortView{
			ID:       row.ID,
			BookerID: row.BookerID,
			Start:    pgconv.TimeFromPgtype(row.StartDate),
			End:      pgconv.TimeFromPgtype(row.EndDate),
		}
	}
	return last, next, nil
}

func (r *ItemReadStore) CommentsByItems(ctx context.Context, itemIDs []int64) (map[int64][]*queries.CommentView, error) {
	rows, err := r.queries.ListCommentsByItems(ctx, r.db, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	out := make(map[int64][]*queries.CommentView)
	for _, row := range rows {
		out[row.ItemID] = append(out[row.ItemID], &queries.CommentView{
			ID:         row.ID,
			ItemID:     row.ItemID,
			Text:       row.Text,
			AuthorName: row.AuthorName,
			Created:    pgconv.TimeFromPgtype(row.Created),
		})
	}
	return out, nil
}

func (r *ItemReadStore) selectItems(ctx context.Context, query string, args []any) ([]*queries.ItemView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	views := make([]*queries.ItemView, 0)
	for rows.Next() {
		var (
			v         queries.ItemView
			requestID *int64
		)
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.Name, &v.Description, &v.Available, &requestID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		v.RequestID = requestID
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item rows", err)
	}
	return views, nil
}

func buildItemListSQL(where exp.Expression, page queries.Page) (string, []any, error) {
	ds := dialect().
		From("items").
		Select(itemColumns...).
		Where(where).
		Order(goqu.C("id").Asc()).
		Prepared(true)

	if page.From > 0 {
		ds = ds.Offset(uint(page.From))
	}
	if page.Limited() {
		ds = ds.Limit(uint(page.Size))
	}
	return ds.ToSQL()
}

// searchExpression matches available items by name or description, ignoring case.
func searchExpression(text string) exp.Expression {
	pattern := "%" + likeEscaper.Replace(text) + "%"
	return goqu.And(
		goqu.C("available").IsTrue(),
		goqu.Or(
			goqu.C("name").ILike(pattern),
			goqu.C("description").ILike(pattern),
		),
	)
}
