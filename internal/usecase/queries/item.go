package queries

import (
	"context"
	"strings"
	"time"

	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
)

var ErrItemNotFound = errs.NotFound("item not found")

type ItemReadStore interface {
	FindByID(ctx context.Context, id int64) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID int64, page Page) ([]*ItemView, error)
	Search(ctx context.Context, text string, page Page) ([]*ItemView, error)
	// BookingBounds returns the last started and the next upcoming approved booking per item.
	BookingBounds(ctx context.Context, itemIDs []int64, now time.Time) (last, next map[int64]*BookingShortView, err error)
	CommentsByItems(ctx context.Context, itemIDs []int64) (map[int64][]*CommentView, error)
}

type ItemQueries interface {
	GetByID(ctx context.Context, actorID, itemID int64) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID int64, page Page) ([]*ItemView, error)
	Search(ctx context.Context, text string, page Page) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	items ItemReadStore
	users UserReadStore
	clock clock.Clock
}

func NewItemQueries(items ItemReadStore, users UserReadStore, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{items: items, users: users, clock: clk}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, actorID, itemID int64) (*ItemView, error) {
	view, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	views := []*ItemView{view}
	if err = q.attachComments(ctx, views); err != nil {
		return nil, err
	}
	// booking dates are only shown to the owner
	if view.OwnerID == actorID {
		if err = q.attachBookings(ctx, views); err != nil {
			return nil, err
		}
	}
	return view, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID int64, page Page) ([]*ItemView, error) {
	if _, err := q.users.FindByID(ctx, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	views, err := q.items.ListByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, err
	}
	if err = q.attachComments(ctx, views); err != nil {
		return nil, err
	}
	if err = q.attachBookings(ctx, views); err != nil {
		return nil, err
	}
	return nonNil(views), nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string, page Page) ([]*ItemView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []*ItemView{}, nil
	}
	views, err := q.items.Search(ctx, text, page)
	if err != nil {
		return nil, err
	}
	if err = q.attachComments(ctx, views); err != nil {
		return nil, err
	}
	return nonNil(views), nil
}

func (q *itemQueriesImpl) attachComments(ctx context.Context, views []*ItemView) error {
	if len(views) == 0 {
		return nil
	}
	byItem, err := q.items.CommentsByItems(ctx, itemIDs(views))
	if err != nil {
		return err
	}
	for _, v := range views {
		v.Comments = byItem[v.ID]
		if v.Comments == nil {
			v.Comments = []*CommentView{}
		}
	}
	return nil
}

func (q *itemQueriesImpl) attachBookings(ctx context.Context, views []*ItemView) error {
	if len(views) == 0 {
		return nil
	}
	last, next, err := q.items.BookingBounds(ctx, itemIDs(views), q.clock.Now())
	if err != nil {
		return err
	}
	for _, v := range views {
		v.LastBooking = last[v.ID]
		v.NextBooking = next[v.ID]
	}
	return nil
}

func itemIDs(views []*ItemView) []int64 {
	ids := make([]int64, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	return ids
}

func nonNil(views []*ItemView) []*ItemView {
	if views == nil {
		return []*ItemView{}
	}
	return views
}
