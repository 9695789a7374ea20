package queries

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
)

var ErrCommentNotFound = errs.NotFound("comment not found")

type CommentReadStore interface {
	FindByID(ctx context.Context, id int64) (*CommentView, error)
}

type CommentQueries interface {
	GetByID(ctx context.Context, id int64) (*CommentView, error)
}

type commentQueriesImpl struct {
	readStore CommentReadStore
}

func NewCommentQueries(readStore CommentReadStore) CommentQueries {
	return &commentQueriesImpl{readStore: readStore}
}

func (q *commentQueriesImpl) GetByID(ctx context.Context, id int64) (*CommentView, error) {
	c, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return c, nil
}
