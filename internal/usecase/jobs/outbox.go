package jobs

import (
	"context"
	"log/slog"
	"time"

	"courtside/internal/domain/outbox"
	"courtside/internal/infra/mq"
	"courtside/internal/pkg/clock"
	"courtside/internal/pkg/metrics"
	"courtside/internal/usecase/shared"
)

//go:generate mockgen -source=outbox.go -destination=../../../tests/mock/jobs/outbox_mock.go -package=jobsmock

const (
	DefaultOutboxBatchSize   int32 = 100
	DefaultOutboxMaxAttempts       = 10
	DefaultOutboxLease             = time.Minute
)

type Publisher interface {
	Publish(ctx context.Context, msg mq.Message) error
}

type DispatchResult struct {
	Published int
	Retrying  int
	Failed    int
}

// Dispatcher drains due notification jobs to the broker.
type Dispatcher struct {
	uow         shared.UnitOfWork
	publisher   Publisher
	clock       clock.Clock
	batchSize   int32
	maxAttempts int
	lease       time.Duration
	metrics     metrics.Metrics
	logger      *slog.Logger
}

func NewDispatcher(
	uow shared.UnitOfWork,
	publisher Publisher,
	clk clock.Clock,
	batchSize int32,
	maxAttempts int,
	lease time.Duration,
	m metrics.Metrics,
	logger *slog.Logger,
) *Dispatcher {
	if batchSize <= 0 {
		batchSize = DefaultOutboxBatchSize
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultOutboxMaxAttempts
	}
	if lease <= 0 {
		lease = DefaultOutboxLease
	}
	return &Dispatcher{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		lease:       lease,
		metrics:     m,
		logger:      logger,
	}
}

// Dispatch runs in three steps so no broker call happens under a row lock: claim due jobs
// and push their run_at past the lease in one short transaction, publish, then record the
// outcomes. Delivery is at-least-once: a crash before the outcomes commit re-sends the jobs
// once the lease runs out.
func (d *Dispatcher) Dispatch(ctx context.Context) (DispatchResult, error) {
	var due []outbox.Job
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := d.clock.Now()
		claimed, err := tx.Notifications().ClaimDue(ctx, now, now.Add(d.lease), d.batchSize)
		if err != nil {
			return err
		}
		due = claimed
		return nil
	})
	if err != nil || len(due) == 0 {
		return DispatchResult{}, err
	}

	statuses := make([]outbox.Status, len(due))
	lastErrs := make([]*string, len(due))
	for i, job := range due {
		statuses[i], lastErrs[i] = d.publish(ctx, job)
	}

	var result DispatchResult
	err = d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = DispatchResult{}
		for i, job := range due {
			if err := tx.Notifications().UpdateJobStatus(ctx, job.ID, statuses[i], lastErrs[i]); err != nil {
				return err
			}
			switch statuses[i] {
			case outbox.StatusSent:
				result.Published++
			case outbox.StatusFailed:
				result.Failed++
			default:
				result.Retrying++
			}
		}
		return nil
	})
	if err != nil {
		return DispatchResult{}, err
	}

	for i := 0; i < result.Published; i++ {
		d.metrics.IncOutboxPublished()
	}
	for i := 0; i < result.Retrying+result.Failed; i++ {
		d.metrics.IncOutboxFailed()
	}
	return result, nil
}

func (d *Dispatcher) publish(ctx context.Context, job outbox.Job) (outbox.Status, *string) {
	err := d.publisher.Publish(ctx, mq.Message{
		ID:         job.ID.String(),
		RoutingKey: job.Topic,
		Body:       job.Payload,
	})
	if err == nil {
		return outbox.StatusSent, nil
	}

	msg := err.Error()
	status := outbox.StatusQueued
	if job.Attempts+1 >= d.maxAttempts {
		status = outbox.StatusFailed
	}
	d.logger.WarnContext(ctx, "outbox publish failed",
		"job", "outbox",
		"job_id", job.ID.String(),
		"topic", job.Topic,
		"attempts", job.Attempts+1,
		"status", string(status),
		"error", msg)
	return status, &msg
}

// Run adapts Dispatch to periodic.Func.
func (d *Dispatcher) Run(ctx context.Context) error {
	_, err := d.Dispatch(ctx)
	return err
}
