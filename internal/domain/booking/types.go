package booking

import "shareit/internal/pkg/errs"

var (
	ErrInvalidStatus = errs.New("invalid booking status")
	ErrUnknownState  = errs.Validation("unknown booking state")
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// State selects a view over a user's bookings at query time. It is never stored.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

func (s State) String() string {
	return string(s)
}

// ParseState matches tokens case-sensitively.
func ParseState(s string) (State, error) {
	state := State(s)
	if _, ok := stateFilters[state]; !ok {
		return "", ErrUnknownState
	}
	return state, nil
}

func States() []State {
	return []State{StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected}
}
