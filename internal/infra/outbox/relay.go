package outbox

import (
	"context"
	"errors"
	"log/slog"
	"time"

	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TxBeginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

type JobStore interface {
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]sqlc.NotificationJobs, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error
	MarkRetry(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, lastError string, runAt time.Time, giveUp bool) error
}

type Publisher interface {
	Publish(ctx context.Context, topic, messageID string, body []byte) error
}

// Relay drains queued notification jobs to the broker. A batch is claimed with
// SKIP LOCKED inside one transaction, so several relays can run side by side.
type Relay struct {
	db    TxBeginner
	jobs  JobStore
	pub   Publisher
	clock clock.Clock
	cfg   config.RelayConfig
}

func NewRelay(db TxBeginner, jobs JobStore, pub Publisher, clk clock.Clock, cfg config.RelayConfig) *Relay {
	return &Relay{db: db, jobs: jobs, pub: pub, clock: clk, cfg: cfg}
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		if _, err := r.DrainOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("outbox relay pass failed", "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// DrainOnce handles one batch and returns how many jobs were published.
func (r *Relay) DrainOnce(ctx context.Context) (int, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return 0, errs.Wrap(err, "begin relay transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := r.clock.Now()
	jobs, err := r.jobs.ClaimDue(ctx, tx, now, r.cfg.BatchSize)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, job := range jobs {
		pubErr := r.pub.Publish(ctx, job.Topic, job.ID.String(), job.Payload)
		if pubErr == nil {
			if err := r.jobs.MarkSent(ctx, tx, job.ID); err != nil {
				return sent, err
			}
			sent++
			continue
		}

		giveUp := job.Attempts+1 >= r.cfg.MaxAttempts
		runAt := now.Add(r.backoff(job.Attempts))
		slog.Warn("notification publish failed",
			"job_id", job.ID.String(),
			"topic", job.Topic,
			"attempt", job.Attempts+1,
			"give_up", giveUp,
			"error", pubErr.Error(),
		)
		if err := r.jobs.MarkRetry(ctx, tx, job.ID, pubErr.Error(), runAt, giveUp); err != nil {
			return sent, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, errs.Wrap(err, "commit relay transaction")
	}
	if len(jobs) > 0 {
		slog.Debug("outbox relay pass", "claimed", len(jobs), "sent", sent)
	}
	return sent, nil
}

// backoff doubles the retry delay per attempt.
func (r *Relay) backoff(attempts int32) time.Duration {
	d := r.cfg.RetryDelay
	for i := int32(0); i < attempts && d < time.Hour; i++ {
		d *= 2
	}
	return d
}
