package commands

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/shared"
)

type CreateBookingRequest struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type CreateBookingResult struct {
	BookingID int64
}

type BookingCommands interface {
	Create(ctx context.Context, bookerID int64, req CreateBookingRequest) (*CreateBookingResult, error)
	Decide(ctx context.Context, ownerID, bookingID int64, approved bool) error
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, bookerID int64, req CreateBookingRequest) (*CreateBookingResult, error) {
	now := uc.clock.Now()
	period, err := booking.NewPeriod(req.Start, req.End, now)
	if err != nil {
		return nil, err
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, bookerID); derr != nil {
			return orNotFound(derr, ErrUserNotFound)
		}

		// the item row lock serialises overlap checks for the same item
		it, derr := tx.Items().LockByID(ctx, tx.DB(), req.ItemID)
		if derr != nil {
			return orNotFound(derr, ErrItemNotFound)
		}
		if derr = it.EnsureBookable(); derr != nil {
			return derr
		}

		b := booking.NewBooking(it.ID(), bookerID, period)
		approved, derr := tx.Bookings().FindApprovedIntersecting(ctx, tx.DB(), it.ID(), period)
		if derr != nil {
			return derr
		}
		if derr = b.EnsureNoOverlap(approved); derr != nil {
			return derr
		}

		id, derr := tx.Bookings().Create(ctx, tx.DB(), b)
		if derr != nil {
			return derr
		}
		b.AssignID(id)
		createdID = id

		return enqueueBookingEvent(ctx, tx, b, it.OwnerID(), now)
	})
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{BookingID: createdID}, nil
}

func (uc *bookingUseCaseImpl) Decide(ctx context.Context, ownerID, bookingID int64, approved bool) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, tx.DB(), bookingID)
		if err != nil {
			return orNotFound(err, ErrBookingNotFound)
		}

		it, err := tx.Items().LockByID(ctx, tx.DB(), b.ItemID())
		if err != nil {
			return orNotFound(err, ErrItemNotFound)
		}
		if !it.IsOwnedBy(ownerID) {
			return ErrNotItemOwner
		}

		// reload under the item lock so a concurrent decision is seen
		b, err = tx.Bookings().FindByID(ctx, tx.DB(), bookingID)
		if err != nil {
			return orNotFound(err, ErrBookingNotFound)
		}
		if err = b.Decide(approved); err != nil {
			return err
		}

		if b.IsApproved() {
			others, ferr := tx.Bookings().FindApprovedIntersecting(ctx, tx.DB(), b.ItemID(), b.Period())
			if ferr != nil {
				return ferr
			}
			if err = b.EnsureNoOverlap(others); err != nil {
				return err
			}
		}

		if err = tx.Bookings().UpdateStatus(ctx, tx.DB(), b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return booking.ErrItemBooked
			}
			return orNotFound(err, ErrBookingNotFound)
		}

		return enqueueBookingEvent(ctx, tx, b, it.OwnerID(), uc.clock.Now())
	})
}
