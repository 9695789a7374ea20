package converter

import (
	"shareit/internal/domain/booking"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ItemID:    b.ItemID(),
		BookerID:  b.BookerID(),
		StartDate: pgconv.TimeToPgtype(b.Period().Start()),
		EndDate:   pgconv.TimeToPgtype(b.Period().End()),
		Status:    b.Status().String(),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	period := booking.ReconstructPeriod(pgconv.TimeFromPgtype(row.StartDate), pgconv.TimeFromPgtype(row.EndDate))
	return booking.ReconstructBooking(row.ID, row.ItemID, row.BookerID, period, status), nil
}
