//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"courtside/internal/domain/outbox"
	"courtside/internal/infra/repository"
	sqlc "courtside/internal/infra/sqlc/generated"
	repositorymock "courtside/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_ClaimDue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	leaseUntil := now.Add(time.Minute)

	t.Run("claimed jobs carry the lease", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		jobID := uuid.New()
		mockQueries.EXPECT().ClaimDueNotificationJobs(ctx, mockDB, sqlc.ClaimDueNotificationJobsParams{
			LeaseUntil: pgtype.Timestamptz{Time: leaseUntil, Valid: true},
			Now:        pgtype.Timestamptz{Time: now, Valid: true},
			BatchSize:  10,
		}).Return([]sqlc.NotificationJob{{
			ID:       jobID,
			Kind:     outbox.KindMatch,
			Topic:    outbox.TopicMatchCreated,
			Payload:  []byte(`{}`),
			RunAt:    pgtype.Timestamptz{Time: leaseUntil, Valid: true},
			Status:   "queued",
			Attempts: 1,
		}}, nil)

		jobs, err := repo.ClaimDue(ctx, now, leaseUntil, 10)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, jobID, jobs[0].ID)
		assert.Equal(t, outbox.StatusQueued, jobs[0].Status)
		assert.Equal(t, 1, jobs[0].Attempts)
		assert.True(t, jobs[0].RunAt.Equal(leaseUntil))
	})

	t.Run("database failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().ClaimDueNotificationJobs(ctx, mockDB, gomock.Any()).Return(nil, errors.New("boom"))

		_, err := repo.ClaimDue(ctx, now, leaseUntil, 10)
		require.Error(t, err)
	})
}
