package queries

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
)

var ErrBookingNotFound = errs.NotFound("booking not found")

// Party selects which side of a booking the listed user is on.
type Party int

const (
	PartyBooker Party = iota
	PartyOwner
)

type BookingListQuery struct {
	Party  Party
	UserID int64
	Filter booking.Filter
	Now    time.Time
	Page   Page
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	List(ctx context.Context, q BookingListQuery) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, requesterID, bookingID int64) (*BookingView, error)
	ListByBooker(ctx context.Context, bookerID int64, state booking.State, page Page) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID int64, state booking.State, page Page) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	users    UserReadStore
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, users UserReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, users: users, clock: clk}
}

// GetByID hides bookings from anyone but the booker and the item owner behind the not-found error.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, requesterID, bookingID int64) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if view.Booker.ID != requesterID && view.ItemOwnerID != requesterID {
		return nil, ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByBooker(ctx context.Context, bookerID int64, state booking.State, page Page) ([]*BookingView, error) {
	return q.list(ctx, PartyBooker, bookerID, state, page)
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, ownerID int64, state booking.State, page Page) ([]*BookingView, error) {
	return q.list(ctx, PartyOwner, ownerID, state, page)
}

func (q *bookingQueriesImpl) list(ctx context.Context, party Party, userID int64, state booking.State, page Page) ([]*BookingView, error) {
	if _, err := q.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	filter, err := booking.FilterFor(state)
	if err != nil {
		return nil, err
	}

	views, err := q.bookings.List(ctx, BookingListQuery{
		Party:  party,
		UserID: userID,
		Filter: filter,
		Now:    q.clock.Now(),
		Page:   page,
	})
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []*BookingView{}
	}
	return views, nil
}
