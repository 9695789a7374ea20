package readstore

import (
	"context"

	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
)

type CommentReadQueries interface {
	GetCommentViewByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetCommentViewByIDRow, error)
}

type CommentReadStore struct {
	queries CommentReadQueries
	db      sqlc.DBTX
}

func NewCommentReadStore(queries CommentReadQueries, db sqlc.DBTX) *CommentReadStore {
	return &CommentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CommentReadStore) FindByID(ctx context.Context, id int64) (*queries.CommentView, error) {
	row, err := r.queries.GetCommentViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("comment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get comment view by id", err)
	}
	return &queries.CommentView{
		ID:         row.ID,
		ItemID:     row.ItemID,
		Text:       row.Text,
		AuthorName: row.AuthorName,
		Created:    pgconv.TimeFromPgtype(row.Created),
	}, nil
}
