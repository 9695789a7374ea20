package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// PostgresUoW runs use case transactions at READ COMMITTED. Booking writes
// serialize on the item row lock instead of a stricter isolation level.
type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *sqlc.Queries
	policy retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) shared.UnitOfWork {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		policy: retryPolicy{maxRetries: cfg.Tx.MaxRetries, base: cfg.Tx.RetryBase},
	}
}

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = u.runOnce(ctx, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
		if attempt >= u.policy.maxRetries {
			slog.ErrorContext(ctx, "transaction gave up", "attempts", attempt+1, "error", err)
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := u.policy.backoff(attempt)
		slog.WarnContext(ctx, "retrying transaction", "attempt", attempt+1, "wait", wait, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// runOnce owns one pgx transaction; its rollback runs before any retry wait.
func (u *PostgresUoW) runOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.WarnContext(ctx, "rollback failed", "error", rbErr)
		}
	}()

	if err = fn(ctx, newTx(pgxTx, u.q)); err != nil {
		return err
	}
	if err = pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

type retryPolicy struct {
	maxRetries int
	base       time.Duration
}

// backoff doubles per attempt with up to 20% jitter.
func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := p.base << attempt
	if wait <= 0 {
		return 0
	}
	return wait + rand.N(wait/5+1)
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
		return true
	default:
		return false
	}
}
