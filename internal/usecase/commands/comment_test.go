//go:build unit

package commands_test

import (
	"context"
	"testing"

	domcomment "shareit/internal/domain/comment"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/commands"
	"shareit/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCommentCommands_Create(t *testing.T) {
	ctx := context.Background()
	author := builder.NewUserBuilder().WithID(2).WithName("Bob").WithEmail("bob@example.com")
	drill := builder.NewItemBuilder().WithID(10).WithOwnerID(1)

	t.Run("success: author finished an approved booking", func(t *testing.T) {
		h := newTxHarness(t)
		uc := commands.NewCommentUseCase(h.uow, clock.NewMockClock(now))

		h.reads.EXPECT().UserByID(ctx, author.ID).Return(author.BuildSnapshot(), nil)
		h.items.EXPECT().FindByID(ctx, nil, drill.ID).Return(drill.BuildStored(), nil)
		h.reads.EXPECT().HasFinishedApprovedBooking(ctx, drill.ID, author.ID, now).Return(true, nil)
		h.comments.EXPECT().Create(ctx, nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, c *domcomment.Comment) (int64, error) {
				assert.Equal(t, "Great drill", c.Text().String())
				assert.Equal(t, now, c.Created())
				return 5, nil
			})

		res, err := uc.Create(ctx, author.ID, drill.ID, "Great drill")
		require.NoError(t, err)
		assert.Equal(t, int64(5), res.CommentID)
	})

	t.Run("error: no finished booking", func(t *testing.T) {
		h := newTxHarness(t)
		uc := commands.NewCommentUseCase(h.uow, clock.NewMockClock(now))

		h.reads.EXPECT().UserByID(ctx, author.ID).Return(author.BuildSnapshot(), nil)
		h.items.EXPECT().FindByID(ctx, nil, drill.ID).Return(drill.BuildStored(), nil)
		h.reads.EXPECT().HasFinishedApprovedBooking(ctx, drill.ID, author.ID, now).Return(false, nil)

		_, err := uc.Create(ctx, author.ID, drill.ID, "Great drill")
		require.ErrorIs(t, err, domcomment.ErrNotEligible)
	})

	t.Run("error: unknown item", func(t *testing.T) {
		h := newTxHarness(t)
		uc := commands.NewCommentUseCase(h.uow, clock.NewMockClock(now))

		h.reads.EXPECT().UserByID(ctx, author.ID).Return(author.BuildSnapshot(), nil)
		h.items.EXPECT().FindByID(ctx, nil, int64(99)).Return(nil, repoNotFound())

		_, err := uc.Create(ctx, author.ID, 99, "Great drill")
		require.ErrorIs(t, err, commands.ErrItemNotFound)
	})

	t.Run("error: unknown author", func(t *testing.T) {
		h := newTxHarness(t)
		uc := commands.NewCommentUseCase(h.uow, clock.NewMockClock(now))

		h.reads.EXPECT().UserByID(ctx, int64(99)).Return(nil, repoNotFound())

		_, err := uc.Create(ctx, 99, drill.ID, "Great drill")
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})
}
