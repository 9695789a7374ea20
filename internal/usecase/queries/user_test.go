//go:build unit

package queries_test

import (
	"context"
	"testing"

	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	queriesmock "shareit/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
		alice := builder.NewUserBuilder().BuildView()
		store.EXPECT().FindByID(ctx, alice.ID).Return(alice, nil)

		got, err := queries.NewUserQueries(store).GetByID(ctx, alice.ID)

		require.NoError(t, err)
		assert.Equal(t, alice, got)
	})

	t.Run("not found", func(t *testing.T) {
		store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(ctx, int64(3)).Return(nil, notFound())

		_, err := queries.NewUserQueries(store).GetByID(ctx, 3)

		require.ErrorIs(t, err, queries.ErrUserNotFound)
	})

	t.Run("storage failure passes through", func(t *testing.T) {
		store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(ctx, int64(3)).Return(nil, assert.AnError)

		_, err := queries.NewUserQueries(store).GetByID(ctx, 3)

		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestCommentQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	store := queriesmock.NewMockCommentReadStore(gomock.NewController(t))
	store.EXPECT().FindByID(ctx, int64(5)).Return(nil, notFound())

	_, err := queries.NewCommentQueries(store).GetByID(ctx, 5)

	require.ErrorIs(t, err, queries.ErrCommentNotFound)
}
