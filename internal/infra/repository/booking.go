package repository

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/repository/converter"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (int64, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	FindBookingByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Bookings, error)
	FindIntersectingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.FindIntersectingBookingsParams) ([]sqlc.Bookings, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, error) {
	id, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

// UpdateStatus persists the decision. An exclusion violation surfaces as KindConflict.
func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	affected, err := r.queries.UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{
		ID:     b.ID(),
		Status: b.Status().String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, tx sqlc.DBTX, bookingID int64) (*booking.Booking, error) {
	row, err := r.queries.FindBookingByID(ctx, tx, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking is invalid", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingRepository) FindApprovedIntersecting(ctx context.Context, tx sqlc.DBTX, itemID int64, period booking.Period) ([]*booking.Booking, error) {
	rows, err := r.queries.FindIntersectingBookings(ctx, tx, sqlc.FindIntersectingBookingsParams{
		ItemID:    itemID,
		Statuses:  []string{booking.StatusApproved.String()},
		StartDate: pgconv.TimeToPgtype(period.Start()),
		EndDate:   pgconv.TimeToPgtype(period.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find intersecting bookings", err)
	}

	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, cerr := converter.BookingFromRow(row)
		if cerr != nil {
			return nil, infra.WrapRepoErr("stored booking is invalid", cerr, infra.KindDBFailure)
		}
		out = append(out, b)
	}
	return out, nil
}
