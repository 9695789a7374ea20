//go:build unit

package comment_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"shareit/internal/domain/comment"
	"shareit/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	err   error
	input comment.EligibilityInput
	calls int
}

func (s *stubChecker) CanComment(_ context.Context, input comment.EligibilityInput) error {
	s.calls++
	s.input = input
	return s.err
}

func TestNewComment(t *testing.T) {
	now := time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("eligible author", func(t *testing.T) {
		checker := &stubChecker{}
		services := &comment.Services{Clock: clock.NewMockClock(now), EligibilityChecker: checker}

		c, err := comment.NewComment(ctx, services, 10, 2, "  Works great  ")
		require.NoError(t, err)

		assert.Equal(t, "Works great", c.Text().String())
		assert.Equal(t, now, c.Created())
		assert.Equal(t, int64(10), c.ItemID())
		assert.Equal(t, int64(2), c.AuthorID())
		assert.Equal(t, comment.EligibilityInput{ItemID: 10, AuthorID: 2, Now: now}, checker.input)
	})

	t.Run("ineligible author", func(t *testing.T) {
		checker := &stubChecker{err: comment.ErrNotEligible}
		services := &comment.Services{Clock: clock.NewMockClock(now), EligibilityChecker: checker}

		c, err := comment.NewComment(ctx, services, 10, 3, "Nice")
		require.Nil(t, c)
		require.ErrorIs(t, err, comment.ErrNotEligible)
	})

	t.Run("text checked before eligibility", func(t *testing.T) {
		checker := &stubChecker{}
		services := &comment.Services{Clock: clock.NewMockClock(now), EligibilityChecker: checker}

		_, err := comment.NewComment(ctx, services, 10, 2, "   ")
		require.ErrorIs(t, err, comment.ErrEmptyText)

		_, err = comment.NewComment(ctx, services, 10, 2, strings.Repeat("a", comment.MaxTextLength+1))
		require.ErrorIs(t, err, comment.ErrTextTooLong)

		assert.Zero(t, checker.calls)
	})
}
