package jobs

import (
	"context"
	"log/slog"
	"time"

	"courtside/internal/domain/reservation"
	"courtside/internal/pkg/clock"
	"courtside/internal/pkg/errs"
	"courtside/internal/pkg/metrics"
	"courtside/internal/usecase/commands"
	"courtside/internal/usecase/shared"
)

const DefaultReaperBatchSize int32 = 500

type SweepResult struct {
	Expired int
	Skipped int
	Failed  int
}

// Reaper cancels pending reservations whose hold has expired, one transaction per reservation.
type Reaper struct {
	uow          shared.UnitOfWork
	reservations commands.ReservationCommands
	clock        clock.Clock
	batchSize    int32
	metrics      metrics.Metrics
	logger       *slog.Logger
}

func NewReaper(
	uow shared.UnitOfWork,
	reservations commands.ReservationCommands,
	clk clock.Clock,
	batchSize int32,
	m metrics.Metrics,
	logger *slog.Logger,
) *Reaper {
	if batchSize <= 0 {
		batchSize = DefaultReaperBatchSize
	}
	return &Reaper{
		uow:          uow,
		reservations: reservations,
		clock:        clk,
		batchSize:    batchSize,
		metrics:      m,
		logger:       logger,
	}
}

// Sweep never stops on a single failed reservation. Only a listing failure is returned.
func (r *Reaper) Sweep(ctx context.Context) (SweepResult, error) {
	var result SweepResult
	started := time.Now()

	ids, err := r.uow.CommandReads().ExpiredPendingReservationIDs(ctx, r.clock.Now(), r.batchSize)
	if err != nil {
		return result, errs.Wrap(err, "list expired holds")
	}

	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}

		err := r.reservations.Cancel(ctx, id, reservation.CancelReasonExpired)
		switch {
		case err == nil:
			result.Expired++
		case errs.Is(err, errs.ErrConflict), errs.Is(err, errs.ErrNotFound):
			// paid or cancelled by a concurrent actor since listing
			result.Skipped++
		default:
			result.Failed++
			r.logger.ErrorContext(ctx, "failed to expire hold",
				"job", "reaper",
				"reservation_id", id.String(),
				"error", err.Error())
		}
	}

	r.metrics.ObserveSweep(result.Expired, result.Skipped, result.Failed, time.Since(started).Seconds())
	if len(ids) > 0 {
		r.logger.InfoContext(ctx, "reaper sweep finished",
			"job", "reaper",
			"expired", result.Expired,
			"skipped", result.Skipped,
			"failed", result.Failed)
	}
	return result, nil
}

// Run adapts Sweep to periodic.Func.
func (r *Reaper) Run(ctx context.Context) error {
	_, err := r.Sweep(ctx)
	return err
}
