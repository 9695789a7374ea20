package shared

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/user"
	sqlc "shareit/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

// UnitOfWork runs fn in one transaction. fn may be called again when the
// transaction hits a serialization failure or deadlock, so it must not keep
// side effects outside tx.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Users() UserRepository
	Items() ItemRepository
	Bookings() BookingRepository
	Comments() CommentRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserByID(ctx context.Context, id int64) (*UserSnapshot, error)
	HasFinishedApprovedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (int64, error)
	Update(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	Delete(ctx context.Context, tx sqlc.DBTX, userID int64) error
	FindByID(ctx context.Context, tx sqlc.DBTX, userID int64) (*user.User, error)
}

type ItemRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, it *item.Item) (int64, error)
	Update(ctx context.Context, tx sqlc.DBTX, it *item.Item) error
	Delete(ctx context.Context, tx sqlc.DBTX, itemID int64) error
	FindByID(ctx context.Context, tx sqlc.DBTX, itemID int64) (*item.Item, error)
	// LockByID holds the item row until the transaction ends.
	LockByID(ctx context.Context, tx sqlc.DBTX, itemID int64) (*item.Item, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, tx sqlc.DBTX, bookingID int64) (*booking.Booking, error)
	FindApprovedIntersecting(ctx context.Context, tx sqlc.DBTX, itemID int64, period booking.Period) ([]*booking.Booking, error)
}

type CommentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *comment.Comment) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, job NotificationJob) error
}

// NotificationJob is an outbox row written in the same transaction as the change it announces.
type NotificationJob struct {
	ID      uuid.UUID
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}
