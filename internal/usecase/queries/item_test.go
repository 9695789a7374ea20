//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	queriesmock "shareit/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type itemFixture struct {
	items *queriesmock.MockItemReadStore
	users *queriesmock.MockUserReadStore
	q     queries.ItemQueries
}

func newItemFixture(t *testing.T) *itemFixture {
	ctrl := gomock.NewController(t)
	f := &itemFixture{
		items: queriesmock.NewMockItemReadStore(ctrl),
		users: queriesmock.NewMockUserReadStore(ctrl),
	}
	f.q = queries.NewItemQueries(f.items, f.users, clock.NewMockClock(now))
	return f
}

func TestItemQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	drill := builder.NewItemBuilder().WithID(10).WithOwnerID(1)
	last := &queries.BookingShortView{ID: 1, BookerID: 2, Start: now.Add(-48 * time.Hour), End: now.Add(-24 * time.Hour)}
	next := &queries.BookingShortView{ID: 2, BookerID: 3, Start: now.Add(24 * time.Hour), End: now.Add(48 * time.Hour)}
	comment := &queries.CommentView{ID: 5, ItemID: drill.ID, Text: "Great", AuthorName: "Bob", Created: now}

	t.Run("owner sees booking bounds", func(t *testing.T) {
		f := newItemFixture(t)
		f.items.EXPECT().FindByID(ctx, drill.ID).Return(drill.BuildView(), nil)
		f.items.EXPECT().CommentsByItems(ctx, []int64{drill.ID}).
			Return(map[int64][]*queries.CommentView{drill.ID: {comment}}, nil)
		f.items.EXPECT().BookingBounds(ctx, []int64{drill.ID}, now).
			Return(map[int64]*queries.BookingShortView{drill.ID: last}, map[int64]*queries.BookingShortView{drill.ID: next}, nil)

		got, err := f.q.GetByID(ctx, drill.OwnerID, drill.ID)

		require.NoError(t, err)
		assert.Equal(t, last, got.LastBooking)
		assert.Equal(t, next, got.NextBooking)
		assert.Equal(t, []*queries.CommentView{comment}, got.Comments)
	})

	t.Run("other users see comments only", func(t *testing.T) {
		f := newItemFixture(t)
		f.items.EXPECT().FindByID(ctx, drill.ID).Return(drill.BuildView(), nil)
		f.items.EXPECT().CommentsByItems(ctx, []int64{drill.ID}).Return(map[int64][]*queries.CommentView{}, nil)

		got, err := f.q.GetByID(ctx, 2, drill.ID)

		require.NoError(t, err)
		assert.Nil(t, got.LastBooking)
		assert.Nil(t, got.NextBooking)
		assert.NotNil(t, got.Comments)
		assert.Empty(t, got.Comments)
	})

	t.Run("missing item", func(t *testing.T) {
		f := newItemFixture(t)
		f.items.EXPECT().FindByID(ctx, int64(404)).Return(nil, notFound())

		_, err := f.q.GetByID(ctx, 1, 404)

		require.ErrorIs(t, err, queries.ErrItemNotFound)
	})
}

func TestItemQueries_ListByOwner(t *testing.T) {
	ctx := context.Background()
	page := queries.Page{Size: 20}

	t.Run("attaches comments and bookings to each item", func(t *testing.T) {
		f := newItemFixture(t)
		a := builder.NewItemBuilder().WithID(10).BuildView()
		b := builder.NewItemBuilder().WithID(11).WithName("Saw").BuildView()
		next := &queries.BookingShortView{ID: 7, BookerID: 2, Start: now.Add(time.Hour), End: now.Add(2 * time.Hour)}

		f.users.EXPECT().FindByID(ctx, int64(1)).Return(builder.NewUserBuilder().BuildView(), nil)
		f.items.EXPECT().ListByOwner(ctx, int64(1), page).Return([]*queries.ItemView{a, b}, nil)
		f.items.EXPECT().CommentsByItems(ctx, []int64{10, 11}).Return(nil, nil)
		f.items.EXPECT().BookingBounds(ctx, []int64{10, 11}, now).
			Return(nil, map[int64]*queries.BookingShortView{11: next}, nil)

		got, err := f.q.ListByOwner(ctx, 1, page)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Nil(t, got[0].NextBooking)
		assert.Equal(t, next, got[1].NextBooking)
		assert.NotNil(t, got[0].Comments)
	})

	t.Run("owner without items", func(t *testing.T) {
		f := newItemFixture(t)
		f.users.EXPECT().FindByID(ctx, int64(1)).Return(builder.NewUserBuilder().BuildView(), nil)
		f.items.EXPECT().ListByOwner(ctx, int64(1), page).Return(nil, nil)

		got, err := f.q.ListByOwner(ctx, 1, page)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("unknown owner", func(t *testing.T) {
		f := newItemFixture(t)
		f.users.EXPECT().FindByID(ctx, int64(8)).Return(nil, notFound())

		_, err := f.q.ListByOwner(ctx, 8, page)

		require.ErrorIs(t, err, queries.ErrUserNotFound)
	})
}

func TestItemQueries_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("blank text returns nothing without touching storage", func(t *testing.T) {
		f := newItemFixture(t)

		got, err := f.q.Search(ctx, "   ", queries.Page{})

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("text is trimmed before search", func(t *testing.T) {
		f := newItemFixture(t)
		drill := builder.NewItemBuilder().BuildView()
		f.items.EXPECT().Search(ctx, "drill", queries.Page{}).Return([]*queries.ItemView{drill}, nil)
		f.items.EXPECT().CommentsByItems(ctx, []int64{drill.ID}).Return(nil, nil)

		got, err := f.q.Search(ctx, "  drill ", queries.Page{})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Nil(t, got[0].LastBooking)
	})
}
