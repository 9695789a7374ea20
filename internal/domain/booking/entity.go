package booking

import (
	"shareit/internal/pkg/errs"
)

var (
	ErrAlreadyDecided = errs.Conflict("booking already decided")
	ErrItemBooked     = errs.Conflict("item booked for those dates")
)

type Booking struct {
	id       int64
	itemID   int64
	bookerID int64
	period   Period
	status   Status
}

// NewBooking creates a request awaiting the owner's decision. The id is assigned by the store.
func NewBooking(itemID, bookerID int64, period Period) *Booking {
	return &Booking{
		itemID:   itemID,
		bookerID: bookerID,
		period:   period,
		status:   StatusWaiting,
	}
}

func ReconstructBooking(id, itemID, bookerID int64, period Period, status Status) *Booking {
	return &Booking{
		id:       id,
		itemID:   itemID,
		bookerID: bookerID,
		period:   period,
		status:   status,
	}
}

func (b *Booking) ID() int64        { return b.id }
func (b *Booking) ItemID() int64    { return b.itemID }
func (b *Booking) BookerID() int64  { return b.bookerID }
func (b *Booking) Period() Period   { return b.period }
func (b *Booking) Status() Status   { return b.status }
func (b *Booking) IsWaiting() bool  { return b.status == StatusWaiting }
func (b *Booking) IsApproved() bool { return b.status == StatusApproved }

func (b *Booking) AssignID(id int64) {
	b.id = id
}

// Decide moves a waiting booking to APPROVED or REJECTED. Any later call fails.
func (b *Booking) Decide(approved bool) error {
	if b.status != StatusWaiting {
		return ErrAlreadyDecided
	}
	if approved {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

// EnsureNoOverlap fails when any of the given approved bookings intersects this booking's period.
func (b *Booking) EnsureNoOverlap(approved []*Booking) error {
	for _, other := range approved {
		if other.id == b.id && b.id != 0 {
			continue
		}
		if other.status == StatusApproved && other.period.Overlaps(b.period) {
			return ErrItemBooked
		}
	}
	return nil
}
