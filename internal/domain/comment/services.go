package comment

import (
	"context"
	"time"

	"shareit/internal/pkg/clock"
)

type Services struct {
	Clock              clock.Clock
	EligibilityChecker EligibilityChecker
}

type EligibilityInput struct {
	ItemID   int64
	AuthorID int64
	Now      time.Time
}

// EligibilityChecker decides whether an author has actually used the item.
type EligibilityChecker interface {
	CanComment(ctx context.Context, input EligibilityInput) error
}
