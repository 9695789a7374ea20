//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockItemReadQueries struct {
	mock.Mock
}

func (m *MockItemReadQueries) FindItemByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Items, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Items), args.Error(1)
}

func (m *MockItemReadQueries) ListLastBookingsForItems(ctx context.Context, db sqlc.DBTX, arg sqlc.ListLastBookingsForItemsParams) ([]sqlc.ListLastBookingsForItemsRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListLastBookingsForItemsRow), args.Error(1)
}

func (m *MockItemReadQueries) ListNextBookingsForItems(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNextBookingsForItemsParams) ([]sqlc.ListNextBookingsForItemsRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListNextBookingsForItemsRow), args.Error(1)
}

func (m *MockItemReadQueries) ListCommentsByItems(ctx context.Context, db sqlc.DBTX, itemIds []int64) ([]sqlc.ListCommentsByItemsRow, error) {
	args := m.Called(ctx, db, itemIds)
	return args.Get(0).([]sqlc.ListCommentsByItemsRow), args.Error(1)
}

func TestItemReadStore_FindByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockItemReadQueries)
		mockQueries.On("FindItemByID", mock.Anything, mock.Anything, int64(5)).Return(sqlc.Items{}, pgx.ErrNoRows)

		view, err := NewItemReadStore(mockQueries, nil).FindByID(context.Background(), 5)

		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockItemReadQueries)
		mockQueries.On("FindItemByID", mock.Anything, mock.Anything, int64(5)).Return(sqlc.Items{}, assert.AnError)

		_, err := NewItemReadStore(mockQueries, nil).FindByID(context.Background(), 5)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestItemReadStore_BookingBounds(t *testing.T) {
	now := time.Date(2030, 1, 10, 12, 0, 0, 0, time.UTC)
	ids := []int64{10, 11}

	mockQueries := new(MockItemReadQueries)
	mockQueries.On("ListLastBookingsForItems", mock.Anything, mock.Anything, sqlc.ListLastBookingsForItemsParams{
		ItemIds: ids, Now: pgconv.TimeToPgtype(now),
	}).Return([]sqlc.ListLastBookingsForItemsRow{
		{ID: 1, ItemID: 10, BookerID: 2, StartDate: pgconv.TimeToPgtype(now.Add(-48 * time.Hour)), EndDate: pgconv.TimeToPgtype(now.Add(-24 * time.Hour))},
	}, nil)
	mockQueries.On("ListNextBookingsForItems", mock.Anything, mock.Anything, sqlc.ListNextBookingsForItemsParams{
		ItemIds: ids, Now: pgconv.TimeToPgtype(now),
	}).Return([]sqlc.ListNextBookingsForItemsRow{
		{ID: 2, ItemID: 11, BookerID: 3, StartDate: pgconv.TimeToPgtype(now.Add(24 * time.Hour)), EndDate: pgconv.TimeToPgtype(now.Add(48 * time.Hour))},
	}, nil)

	last, next, err := NewItemReadStore(mockQueries, nil).BookingBounds(context.Background(), ids, now)

	require.NoError(t, err)
	assert.Equal(t, &queries.BookingShortView{ID: 1, BookerID: 2, Start: now.Add(-48 * time.Hour), End: now.Add(-24 * time.Hour)}, last[10])
	assert.Nil(t, last[11])
	assert.Nil(t, next[10])
	assert.Equal(t, int64(3), next[11].BookerID)
	mockQueries.AssertExpectations(t)
}

func TestItemReadStore_CommentsByItems(t *testing.T) {
	created := time.Date(2030, 1, 9, 8, 0, 0, 0, time.UTC)
	mockQueries := new(MockItemReadQueries)
	mockQueries.On("ListCommentsByItems", mock.Anything, mock.Anything, []int64{10, 11}).Return([]sqlc.ListCommentsByItemsRow{
		{ID: 1, ItemID: 10, Text: "first", AuthorName: "Bob", Created: pgconv.TimeToPgtype(created)},
		{ID: 2, ItemID: 10, Text: "second", AuthorName: "Carol", Created: pgconv.TimeToPgtype(created)},
	}, nil)

	byItem, err := NewItemReadStore(mockQueries, nil).CommentsByItems(context.Background(), []int64{10, 11})

	require.NoError(t, err)
	require.Len(t, byItem[10], 2)
	assert.Equal(t, "first", byItem[10][0].Text)
	assert.Equal(t, "Carol", byItem[10][1].AuthorName)
	assert.Empty(t, byItem[11])
}

func TestBuildItemListSQL(t *testing.T) {
	t.Run("owner listing ordered by id", func(t *testing.T) {
		sql, args, err := buildItemListSQL(goqu.C("owner_id").Eq(int64(1)), queries.Page{})

		require.NoError(t, err)
		assert.Contains(t, sql, `FROM "items"`)
		assert.Contains(t, sql, `"owner_id" = $1`)
		assert.Contains(t, sql, `ORDER BY "id" ASC`)
		assert.NotContains(t, sql, "LIMIT")
		assert.Equal(t, []any{int64(1)}, args)
	})

	t.Run("paged", func(t *testing.T) {
		sql, _, err := buildItemListSQL(goqu.C("owner_id").Eq(int64(1)), queries.Page{From: 5, Size: 5})

		require.NoError(t, err)
		assert.Contains(t, sql, "LIMIT $")
		assert.Contains(t, sql, "OFFSET $")
	})
}

func TestSearchExpression(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantPattern string
	}{
		{name: "plain text", text: "drill", wantPattern: "%drill%"},
		{name: "wildcards are escaped", text: "50%_off", wantPattern: `%50\%\_off%`},
		{name: "backslash is escaped", text: `a\b`, wantPattern: `%a\\b%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := buildItemListSQL(searchExpression(tt.text), queries.Page{})

			require.NoError(t, err)
			assert.Contains(t, sql, `"available" IS TRUE`)
			assert.Contains(t, sql, `"name" ILIKE $1`)
			assert.Contains(t, sql, `"description" ILIKE $2`)
			assert.Equal(t, []any{tt.wantPattern, tt.wantPattern}, args)
		})
	}
}
