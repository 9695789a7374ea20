package booking

import "time"

// Filter is the predicate behind a State. The same value drives the in-memory
// Matches check and the SQL built by the read store.
type Filter struct {
	Status *Status

	EndAfterNow   bool
	EndBeforeNow  bool
	StartAfterNow bool
}

func withStatus(s Status) *Status { return &s }

// CURRENT only requires an approved booking that has not ended yet, so approved
// bookings that have not started are included as well.
var stateFilters = map[State]Filter{
	StateAll:      {},
	StateCurrent:  {Status: withStatus(StatusApproved), EndAfterNow: true},
	StatePast:     {Status: withStatus(StatusApproved), EndBeforeNow: true},
	StateFuture:   {Status: withStatus(StatusApproved), StartAfterNow: true},
	StateWaiting:  {Status: withStatus(StatusWaiting)},
	StateRejected: {Status: withStatus(StatusRejected)},
}

func FilterFor(state State) (Filter, error) {
	f, ok := stateFilters[state]
	if !ok {
		return Filter{}, ErrUnknownState
	}
	// callers own the result; never hand out the shared table's pointer
	if f.Status != nil {
		f.Status = withStatus(*f.Status)
	}
	return f, nil
}

func (f Filter) Matches(b *Booking, now time.Time) bool {
	if f.Status != nil && b.status != *f.Status {
		return false
	}
	if f.EndAfterNow && !b.period.end.After(now) {
		return false
	}
	if f.EndBeforeNow && !b.period.end.Before(now) {
		return false
	}
	if f.StartAfterNow && !b.period.start.After(now) {
		return false
	}
	return true
}
