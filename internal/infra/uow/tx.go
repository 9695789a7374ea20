package uow

import (
	"context"
	"time"

	"shareit/internal/infra"
	"shareit/internal/infra/repository"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/shared"
)

// pgTx hands out repositories bound to one transaction. Repositories are
// stateless apart from the generated queries, so they are built per call.
type pgTx struct {
	db sqlc.DBTX
	q  *sqlc.Queries
}

func newTx(db sqlc.DBTX, q *sqlc.Queries) *pgTx {
	return &pgTx{db: db, q: q}
}

func (t *pgTx) DB() sqlc.DBTX { return t.db }

func (t *pgTx) Users() shared.UserRepository { return repository.NewUserRepository(t.q) }

func (t *pgTx) Items() shared.ItemRepository { return repository.NewItemRepository(t.q) }

func (t *pgTx) Bookings() shared.BookingRepository { return repository.NewBookingRepository(t.q) }

func (t *pgTx) Comments() shared.CommentRepository { return repository.NewCommentRepository(t.q) }

func (t *pgTx) Notifications() shared.NotificationRepository {
	return repository.NewNotificationRepository(t.q)
}

func (t *pgTx) Reads() shared.CommandReads { return txReads{db: t.db, q: t.q} }

// txReads answers the lookups commands need for their checks, inside the same transaction.
type txReads struct {
	db sqlc.DBTX
	q  *sqlc.Queries
}

func (r txReads) UserByID(ctx context.Context, id int64) (*shared.UserSnapshot, error) {
	row, err := r.q.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &shared.UserSnapshot{ID: row.ID, Name: row.Name, Email: row.Email}, nil
}

func (r txReads) HasFinishedApprovedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	ok, err := r.q.HasFinishedApprovedBooking(ctx, r.db, sqlc.HasFinishedApprovedBookingParams{
		ItemID:   itemID,
		BookerID: bookerID,
		Now:      pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check finished bookings", err)
	}
	return ok, nil
}
