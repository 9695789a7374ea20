package repository

import (
	"context"
	"time"

	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkNotificationJobRetry(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobRetryParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, job shared.NotificationJob) error {
	params := sqlc.CreateNotificationJobParams{
		ID:      job.ID,
		Kind:    job.Kind,
		Topic:   job.Topic,
		Payload: job.Payload,
		RunAt:   pgconv.TimeToPgtype(job.RunAt),
		Status:  JobStatusQueued,
	}

	if err := r.queries.CreateNotificationJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// ClaimDue locks up to limit queued jobs; other relays skip the locked rows.
func (r *NotificationRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]sqlc.NotificationJobs, error) {
	jobs, err := r.queries.ClaimDueNotificationJobs(ctx, tx, sqlc.ClaimDueNotificationJobsParams{
		Now:       pgconv.TimeToPgtype(now),
		BatchSize: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error {
	if err := r.queries.MarkNotificationJobSent(ctx, tx, jobID); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

// MarkRetry records a failed publish. The job is requeued at runAt, or parked as failed when giveUp is set.
func (r *NotificationRepository) MarkRetry(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, lastError string, runAt time.Time, giveUp bool) error {
	status := JobStatusQueued
	if giveUp {
		status = JobStatusFailed
	}
	err := r.queries.MarkNotificationJobRetry(ctx, tx, sqlc.MarkNotificationJobRetryParams{
		Status:    status,
		LastError: pgconv.StringPtrToPgtype(&lastError),
		RunAt:     pgconv.TimeToPgtype(runAt),
		ID:        jobID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job for retry", err)
	}
	return nil
}
