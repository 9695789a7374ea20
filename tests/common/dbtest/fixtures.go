//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool, a connection and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, name, email string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id", name, email).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestItem(t *testing.T, db DBLike, ownerID int64, name, description string, available bool) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO items (owner_id, name, description, available) VALUES ($1, $2, $3, $4) RETURNING id",
		ownerID, name, description, available).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestBooking inserts directly, so periods in the past are allowed.
func CreateTestBooking(t *testing.T, db DBLike, itemID, bookerID int64, start, end time.Time, status string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO bookings (item_id, booker_id, start_date, end_date, status) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		itemID, bookerID, start, end, status).Scan(&id)
	require.NoError(t, err)
	return id
}

func BookingStatus(t *testing.T, db DBLike, bookingID int64) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM bookings WHERE id = $1", bookingID).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountNotificationJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

// tables in child-first order; CASCADE covers anything added later
var resetTables = []string{"notification_jobs", "comments", "bookings", "items", "users"}

// ResetDB empties the service tables and restarts their id sequences.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(resetTables, ", ")+" RESTART IDENTITY CASCADE")
	return err
}
