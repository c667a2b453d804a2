package repository

import (
	"context"
	"time"

	"courtside/internal/domain/outbox"
	"courtside/internal/infra"
	sqlc "courtside/internal/infra/sqlc/generated"
	"courtside/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/repository/notification_mock.go -package=repositorymock

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJob, error)
	UpdateNotificationJobStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateNotificationJobStatusParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgtype.Timestamptz{Time: runAt, Valid: true},
		Status:  string(outbox.StatusQueued),
	}

	err := r.queries.CreateNotificationJob(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

// ClaimDue takes up to limit due jobs, skipping rows another dispatcher holds, and moves
// their run_at to leaseUntil so nobody else picks them up while they are being published.
func (r *NotificationRepository) ClaimDue(ctx context.Context, now, leaseUntil time.Time, limit int32) ([]outbox.Job, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, r.db, sqlc.ClaimDueNotificationJobsParams{
		LeaseUntil: pgconv.TimeToPgtype(leaseUntil),
		Now:        pgconv.TimeToPgtype(now),
		BatchSize:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]outbox.Job, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, outbox.Job{
			ID:        row.ID,
			Kind:      row.Kind,
			Topic:     row.Topic,
			Payload:   row.Payload,
			RunAt:     pgconv.TimeFromPgtype(row.RunAt),
			Status:    outbox.Status(row.Status),
			Attempts:  int(row.Attempts),
			LastError: pgconv.StringPtrFromPgtype(row.LastError),
		})
	}
	return jobs, nil
}

func (r *NotificationRepository) UpdateJobStatus(ctx context.Context, jobID uuid.UUID, status outbox.Status, lastError *string) error {
	params := sqlc.UpdateNotificationJobStatusParams{
		ID:        jobID,
		Status:    string(status),
		LastError: pgconv.StringPtrToPgtype(lastError),
	}

	err := r.queries.UpdateNotificationJobStatus(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}

	return nil
}
