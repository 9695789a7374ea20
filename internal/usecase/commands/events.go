package commands

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

const (
	TopicBookingCreated  = "booking.created"
	TopicBookingApproved = "booking.approved"
	TopicBookingRejected = "booking.rejected"

	jobKindBookingEvent = "booking_event"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type BookingEvent struct {
	BookingID  int64     `json:"bookingId"`
	ItemID     int64     `json:"itemId"`
	BookerID   int64     `json:"bookerId"`
	OwnerID    int64     `json:"ownerId"`
	Status     string    `json:"status"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	OccurredAt time.Time `json:"occurredAt"`
}

func topicFor(status booking.Status) string {
	switch status {
	case booking.StatusApproved:
		return TopicBookingApproved
	case booking.StatusRejected:
		return TopicBookingRejected
	default:
		return TopicBookingCreated
	}
}

func enqueueBookingEvent(ctx context.Context, tx shared.Tx, b *booking.Booking, ownerID int64, now time.Time) error {
	payload, err := json.Marshal(BookingEvent{
		BookingID:  b.ID(),
		ItemID:     b.ItemID(),
		BookerID:   b.BookerID(),
		OwnerID:    ownerID,
		Status:     b.Status().String(),
		Start:      b.Period().Start(),
		End:        b.Period().End(),
		OccurredAt: now,
	})
	if err != nil {
		return err
	}

	return tx.Notifications().CreateJob(ctx, tx.DB(), shared.NotificationJob{
		ID:      uuid.New(),
		Kind:    jobKindBookingEvent,
		Topic:   topicFor(b.Status()),
		Payload: payload,
		RunAt:   now,
	})
}
