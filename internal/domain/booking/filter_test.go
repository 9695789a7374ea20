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

func TestParseState(t *testing.T) {
	for _, s := range booking.States() {
		got, err := booking.ParseState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	for _, token := range []string{"all", "Current", "UNSUPPORTED_STATUS", ""} {
		t.Run("rejects "+token, func(t *testing.T) {
			_, err := booking.ParseState(token)
			require.ErrorIs(t, err, booking.ErrUnknownState)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

// fixture around now: one booking per shape that distinguishes the states
func stateFixture() map[string]*booking.Booking {
	b := func(id int64, start, end time.Duration, status booking.Status) *booking.Booking {
		return builder.NewBookingBuilder().WithID(id).
			WithPeriod(now.Add(start), now.Add(end)).
			WithStatus(status).BuildStored()
	}
	return map[string]*booking.Booking{
		"approved running":  b(1, -time.Hour, time.Hour, booking.StatusApproved),
		"approved finished": b(2, -3*time.Hour, -2*time.Hour, booking.StatusApproved),
		"approved upcoming": b(3, time.Hour, 2*time.Hour, booking.StatusApproved),
		"waiting upcoming":  b(4, time.Hour, 2*time.Hour, booking.StatusWaiting),
		"rejected upcoming": b(5, time.Hour, 2*time.Hour, booking.StatusRejected),
		"waiting finished":  b(6, -3*time.Hour, -2*time.Hour, booking.StatusWaiting),
	}
}

func TestFilter_Matches(t *testing.T) {
	fixture := stateFixture()

	expected := map[booking.State][]string{
		booking.StateAll: {
			"approved running", "approved finished", "approved upcoming",
			"waiting upcoming", "rejected upcoming", "waiting finished",
		},
		// approved and not yet ended, so upcoming approved bookings count too
		booking.StateCurrent:  {"approved running", "approved upcoming"},
		booking.StatePast:     {"approved finished"},
		booking.StateFuture:   {"approved upcoming"},
		booking.StateWaiting:  {"waiting upcoming", "waiting finished"},
		booking.StateRejected: {"rejected upcoming"},
	}

	for state, want := range expected {
		t.Run(state.String(), func(t *testing.T) {
			f, err := booking.FilterFor(state)
			require.NoError(t, err)

			var got []string
			for name, b := range fixture {
				if f.Matches(b, now) {
					got = append(got, name)
				}
			}
			assert.ElementsMatch(t, want, got)
		})
	}
}

func TestFilter_Boundaries(t *testing.T) {
	endsNow := builder.NewBookingBuilder().
		WithPeriod(now.Add(-time.Hour), now).
		WithStatus(booking.StatusApproved).BuildStored()
	startsNow := builder.NewBookingBuilder().
		WithPeriod(now, now.Add(time.Hour)).
		WithStatus(booking.StatusApproved).BuildStored()

	current, _ := booking.FilterFor(booking.StateCurrent)
	past, _ := booking.FilterFor(booking.StatePast)
	future, _ := booking.FilterFor(booking.StateFuture)

	assert.False(t, current.Matches(endsNow, now), "a booking ending exactly now is no longer current")
	assert.False(t, past.Matches(endsNow, now), "past needs end strictly before now")
	assert.False(t, future.Matches(startsNow, now), "future needs start strictly after now")
	assert.True(t, current.Matches(startsNow, now))
}

func TestFilterFor_Unknown(t *testing.T) {
	_, err := booking.FilterFor(booking.State("SOON"))
	assert.ErrorIs(t, err, booking.ErrUnknownState)
}

func TestFilterFor_ReturnsIndependentCopy(t *testing.T) {
	f, err := booking.FilterFor(booking.StateWaiting)
	require.NoError(t, err)
	require.NotNil(t, f.Status)
	*f.Status = booking.StatusApproved

	again, err := booking.FilterFor(booking.StateWaiting)
	require.NoError(t, err)
	require.NotNil(t, again.Status)
	assert.Equal(t, booking.StatusWaiting, *again.Status)
}
