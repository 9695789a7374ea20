package booking

import (
	"time"

	"shareit/internal/pkg/errs"
)

var (
	ErrPeriodRequired    = errs.Validation("booking start and end are required")
	ErrEndNotAfterStart  = errs.Validation("booking end must be after start")
	ErrStartInPast       = errs.Validation("booking start must not be in the past")
	ErrEndNotInTheFuture = errs.Validation("booking end must be in the future")
)

type Period struct {
	start time.Time
	end   time.Time
}

// NewPeriod validates a requested period against now.
// A start equal to now is accepted, an end equal to now is not.
func NewPeriod(start, end, now time.Time) (Period, error) {
	if start.IsZero() || end.IsZero() {
		return Period{}, ErrPeriodRequired
	}
	if !end.After(start) {
		return Period{}, ErrEndNotAfterStart
	}
	if start.Before(now) {
		return Period{}, ErrStartInPast
	}
	if !end.After(now) {
		return Period{}, ErrEndNotInTheFuture
	}
	return Period{start: start, end: end}, nil
}

// ReconstructPeriod skips the time checks for periods loaded from storage.
func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

// Overlaps uses strict comparison, so back-to-back periods do not overlap.
func (p Period) Overlaps(other Period) bool {
	return p.start.Before(other.end) && other.start.Before(p.end)
}
