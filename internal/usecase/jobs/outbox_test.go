//go:build unit

package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"courtside/internal/domain/outbox"
	"courtside/internal/infra/mq"
	"courtside/internal/pkg/clock"
	"courtside/internal/pkg/metrics"
	"courtside/internal/usecase/jobs"
	"courtside/internal/usecase/shared"
	jobsmock "courtside/tests/mock/jobs"
	sharedmock "courtside/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type outboxFixture struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	notifications *sharedmock.MockNotificationRepository
	publisher     *jobsmock.MockPublisher
	metrics       *metrics.Mock
	inTx          bool
	txCount       int
}

func newOutboxFixture(t *testing.T) *outboxFixture {
	ctrl := gomock.NewController(t)
	f := &outboxFixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		publisher:     jobsmock.NewMockPublisher(ctrl),
		metrics:       metrics.NewMock(),
	}
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			f.inTx = true
			f.txCount++
			defer func() { f.inTx = false }()
			return fn(ctx, f.tx)
		}).AnyTimes()
	return f
}

// publishOutsideTx fails the test if the broker is called while a transaction is open.
func (f *outboxFixture) publishOutsideTx(t *testing.T, err error) func(context.Context, mq.Message) error {
	return func(context.Context, mq.Message) error {
		assert.False(t, f.inTx, "publish must not run inside a transaction")
		return err
	}
}

func (f *outboxFixture) dispatcher(maxAttempts int) *jobs.Dispatcher {
	return jobs.NewDispatcher(f.uow, f.publisher, clock.NewMockClock(fixedNow), 20, maxAttempts, time.Minute, f.metrics, discardLogger())
}

func TestDispatcher_Dispatch(t *testing.T) {
	ctx := context.Background()
	leaseUntil := fixedNow.Add(time.Minute)

	t.Run("published job is marked sent", func(t *testing.T) {
		f := newOutboxFixture(t)
		job := outbox.Job{ID: uuid.New(), Kind: outbox.KindMatch, Topic: outbox.TopicMatchCreated, Payload: []byte(`{"sport":"padel"}`)}

		f.notifications.EXPECT().ClaimDue(ctx, fixedNow, leaseUntil, int32(20)).Return([]outbox.Job{job}, nil)
		f.publisher.EXPECT().Publish(ctx, mq.Message{ID: job.ID.String(), RoutingKey: "match.created", Body: job.Payload}).
			DoAndReturn(f.publishOutsideTx(t, nil))
		f.notifications.EXPECT().UpdateJobStatus(ctx, job.ID, outbox.StatusSent, nil).Return(nil)

		got, err := f.dispatcher(3).Dispatch(ctx)

		require.NoError(t, err)
		assert.Equal(t, jobs.DispatchResult{Published: 1}, got)
		assert.Equal(t, 1, f.metrics.OutboxPublished())
		assert.Equal(t, 2, f.txCount, "claim and outcome are separate transactions")
	})

	t.Run("nothing due opens a single transaction", func(t *testing.T) {
		f := newOutboxFixture(t)
		f.notifications.EXPECT().ClaimDue(ctx, fixedNow, leaseUntil, int32(20)).Return(nil, nil)

		got, err := f.dispatcher(3).Dispatch(ctx)

		require.NoError(t, err)
		assert.Equal(t, jobs.DispatchResult{}, got)
		assert.Equal(t, 1, f.txCount)
	})

	t.Run("broker failure keeps the job queued until attempts run out", func(t *testing.T) {
		f := newOutboxFixture(t)
		retry := outbox.Job{ID: uuid.New(), Topic: outbox.TopicMatchFinalized, Attempts: 0}
		last := outbox.Job{ID: uuid.New(), Topic: outbox.TopicPaymentOrphaned, Attempts: 2}

		f.notifications.EXPECT().ClaimDue(ctx, fixedNow, leaseUntil, int32(20)).Return([]outbox.Job{retry, last}, nil)
		f.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(f.publishOutsideTx(t, errors.New("channel closed"))).Times(2)
		f.notifications.EXPECT().UpdateJobStatus(ctx, retry.ID, outbox.StatusQueued, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ outbox.Status, lastErr *string) error {
				require.NotNil(t, lastErr)
				assert.Equal(t, "channel closed", *lastErr)
				return nil
			})
		f.notifications.EXPECT().UpdateJobStatus(ctx, last.ID, outbox.StatusFailed, gomock.Any()).Return(nil)

		got, err := f.dispatcher(3).Dispatch(ctx)

		require.NoError(t, err)
		assert.Equal(t, jobs.DispatchResult{Retrying: 1, Failed: 1}, got)
		assert.Equal(t, 2, f.metrics.OutboxFailed())
	})

	t.Run("status write failure counts nothing and leaves the lease to expire", func(t *testing.T) {
		f := newOutboxFixture(t)
		job := outbox.Job{ID: uuid.New(), Topic: outbox.TopicMatchCreated}

		f.notifications.EXPECT().ClaimDue(ctx, fixedNow, leaseUntil, int32(20)).Return([]outbox.Job{job}, nil)
		f.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
		f.notifications.EXPECT().UpdateJobStatus(ctx, job.ID, outbox.StatusSent, nil).Return(errors.New("db down"))

		got, err := f.dispatcher(3).Dispatch(ctx)

		require.Error(t, err)
		assert.Equal(t, jobs.DispatchResult{}, got)
		assert.Zero(t, f.metrics.OutboxPublished())
	})

	t.Run("claim failure publishes nothing", func(t *testing.T) {
		f := newOutboxFixture(t)
		f.notifications.EXPECT().ClaimDue(ctx, fixedNow, leaseUntil, int32(20)).Return(nil, errors.New("db down"))

		_, err := f.dispatcher(3).Dispatch(ctx)

		require.Error(t, err)
	})
}

func TestDispatcher_Run(t *testing.T) {
	ctx := context.Background()
	f := newOutboxFixture(t)
	gomock.InOrder(
		f.notifications.EXPECT().ClaimDue(ctx, fixedNow, fixedNow.Add(time.Minute), int32(20)).Return(nil, nil),
		f.notifications.EXPECT().ClaimDue(ctx, fixedNow, fixedNow.Add(time.Minute), int32(20)).Return(nil, errors.New("pool closed")),
	)

	d := f.dispatcher(3)

	require.NoError(t, d.Run(ctx))
	assert.ErrorContains(t, d.Run(ctx), "pool closed")
}
