//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/handler/dto/request"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// BaseTime is the fixed "now" used by unit tests.
var BaseTime = time.Date(2030, 1, 10, 12, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	ID         int64
	ItemID     int64
	ItemName   string
	OwnerID    int64
	BookerID   int64
	BookerName string
	Start      time.Time
	End        time.Time
	Status     booking.Status
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:         100,
		ItemID:     10,
		ItemName:   "Drill",
		OwnerID:    1,
		BookerID:   2,
		BookerName: "Bob",
		Start:      BaseTime.Add(24 * time.Hour),
		End:        BaseTime.Add(48 * time.Hour),
		Status:     booking.StatusWaiting,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// BuildDomain validates the period against BaseTime.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	period, err := booking.NewPeriod(b.Start, b.End, BaseTime)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.ItemID, b.BookerID, period), nil
}

func (b *BookingBuilder) BuildStored() *booking.Booking {
	return booking.ReconstructBooking(b.ID, b.ItemID, b.BookerID, booking.ReconstructPeriod(b.Start, b.End), b.Status)
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	return sqlc.Bookings{
		ID:        b.ID,
		ItemID:    b.ItemID,
		BookerID:  b.BookerID,
		StartDate: pgtype.Timestamptz{Time: b.Start, Valid: true},
		EndDate:   pgtype.Timestamptz{Time: b.End, Valid: true},
		Status:    string(b.Status),
		CreatedAt: pgtype.Timestamptz{Time: BaseTime, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: BaseTime, Valid: true},
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:          b.ID,
		Start:       b.Start,
		End:         b.End,
		Status:      string(b.Status),
		Item:        queries.ItemRef{ID: b.ItemID, Name: b.ItemName},
		Booker:      queries.UserRef{ID: b.BookerID, Name: b.BookerName},
		ItemOwnerID: b.OwnerID,
	}
}

// BuildCreateRequestMap uses the zone-less date-time form clients send.
func (b *BookingBuilder) BuildCreateRequestMap() map[string]any {
	return map[string]any{
		"itemId": b.ItemID,
		"start":  b.Start.UTC().Format("2006-01-02T15:04:05"),
		"end":    b.End.UTC().Format("2006-01-02T15:04:05"),
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() request.CreateBookingRequest {
	return request.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  &request.DateTime{Time: b.Start},
		End:    &request.DateTime{Time: b.End},
	}
}

func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithItemID(itemID int64) *BookingBuilder {
	b.ItemID = itemID
	return b
}

func (b *BookingBuilder) WithBookerID(bookerID int64) *BookingBuilder {
	b.BookerID = bookerID
	return b
}

func (b *BookingBuilder) WithPeriod(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}
