//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/errs"
	"shareit/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = builder.BaseTime

func TestNewPeriod(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{name: "future period", start: now.Add(time.Hour), end: now.Add(2 * time.Hour)},
		{name: "start equal to now is accepted", start: now, end: now.Add(time.Hour)},
		{name: "missing start", end: now.Add(time.Hour), errIs: booking.ErrPeriodRequired},
		{name: "missing end", start: now.Add(time.Hour), errIs: booking.ErrPeriodRequired},
		{name: "end equal to start", start: now.Add(time.Hour), end: now.Add(time.Hour), errIs: booking.ErrEndNotAfterStart},
		{name: "end before start", start: now.Add(2 * time.Hour), end: now.Add(time.Hour), errIs: booking.ErrEndNotAfterStart},
		{name: "start in the past", start: now.Add(-time.Second), end: now.Add(time.Hour), errIs: booking.ErrStartInPast},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := booking.NewPeriod(c.start, c.end, now)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.start, p.Start())
				assert.Equal(t, c.end, p.End())
				return
			}
			require.ErrorIs(t, err, c.errIs)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestPeriodOverlaps(t *testing.T) {
	base := booking.ReconstructPeriod(now.Add(10*time.Hour), now.Add(20*time.Hour))

	cases := []struct {
		name  string
		other booking.Period
		want  bool
	}{
		{name: "identical", other: base, want: true},
		{name: "inside", other: booking.ReconstructPeriod(now.Add(12*time.Hour), now.Add(13*time.Hour)), want: true},
		{name: "covering", other: booking.ReconstructPeriod(now, now.Add(30*time.Hour)), want: true},
		{name: "tail overlap", other: booking.ReconstructPeriod(now.Add(19*time.Hour), now.Add(25*time.Hour)), want: true},
		{name: "back to back after", other: booking.ReconstructPeriod(now.Add(20*time.Hour), now.Add(25*time.Hour)), want: false},
		{name: "back to back before", other: booking.ReconstructPeriod(now.Add(5*time.Hour), now.Add(10*time.Hour)), want: false},
		{name: "disjoint", other: booking.ReconstructPeriod(now.Add(30*time.Hour), now.Add(40*time.Hour)), want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, base.Overlaps(c.other))
			assert.Equal(t, c.want, c.other.Overlaps(base), "overlap is symmetric")
		})
	}
}

func TestBooking_NewIsWaiting(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	assert.True(t, b.IsWaiting())
	assert.Equal(t, booking.StatusWaiting, b.Status())
	assert.Zero(t, b.ID())

	b.AssignID(7)
	assert.Equal(t, int64(7), b.ID())
}

func TestBooking_Decide(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored()
		require.NoError(t, b.Decide(true))
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("reject", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored()
		require.NoError(t, b.Decide(false))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("second decision fails and keeps status", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusApproved, booking.StatusRejected} {
			b := builder.NewBookingBuilder().WithStatus(status).BuildStored()
			for _, approved := range []bool{true, false} {
				err := b.Decide(approved)
				require.ErrorIs(t, err, booking.ErrAlreadyDecided)
				assert.True(t, errs.Is(err, errs.ErrConflict))
				assert.Equal(t, status, b.Status())
			}
		}
	})
}

func TestBooking_EnsureNoOverlap(t *testing.T) {
	start, end := now.Add(24*time.Hour), now.Add(48*time.Hour)
	candidate := builder.NewBookingBuilder().WithID(1).WithPeriod(start, end).BuildStored()

	approvedOverlap := builder.NewBookingBuilder().WithID(2).
		WithPeriod(start.Add(time.Hour), end.Add(time.Hour)).
		WithStatus(booking.StatusApproved).BuildStored()
	waitingOverlap := builder.NewBookingBuilder().WithID(3).
		WithPeriod(start, end).BuildStored()
	approvedAdjacent := builder.NewBookingBuilder().WithID(4).
		WithPeriod(end, end.Add(time.Hour)).
		WithStatus(booking.StatusApproved).BuildStored()

	t.Run("approved overlap conflicts", func(t *testing.T) {
		err := candidate.EnsureNoOverlap([]*booking.Booking{approvedAdjacent, approvedOverlap})
		require.ErrorIs(t, err, booking.ErrItemBooked)
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("waiting overlap is ignored", func(t *testing.T) {
		assert.NoError(t, candidate.EnsureNoOverlap([]*booking.Booking{waitingOverlap}))
	})

	t.Run("adjacent period does not conflict", func(t *testing.T) {
		assert.NoError(t, candidate.EnsureNoOverlap([]*booking.Booking{approvedAdjacent}))
	})

	t.Run("the booking itself is skipped", func(t *testing.T) {
		self := builder.NewBookingBuilder().WithID(1).WithPeriod(start, end).
			WithStatus(booking.StatusApproved).BuildStored()
		assert.NoError(t, candidate.EnsureNoOverlap([]*booking.Booking{self}))
	})

	t.Run("empty list", func(t *testing.T) {
		assert.NoError(t, candidate.EnsureNoOverlap(nil))
	})
}

func TestNewStatus(t *testing.T) {
	s, err := booking.NewStatus("APPROVED")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusApproved, s)

	_, err = booking.NewStatus("approved")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}
