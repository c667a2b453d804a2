package commands

import (
	"context"
	"log/slog"
	"time"

	"courtside/internal/domain/reservation"
	"courtside/internal/domain/slot"
	"courtside/internal/domain/user"
	"courtside/internal/pkg/clock"
	"courtside/internal/pkg/errs"
	"courtside/internal/pkg/metrics"
	"courtside/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock

type CreateHoldInput struct {
	SlotID      *uuid.UUID
	UserID      uuid.UUID
	ActorType   string
	ActorID     *string
	UseOwnCourt bool
	CustomVenue []byte
}

type HoldResult struct {
	ReservationID uuid.UUID
	SlotID        *uuid.UUID
	Status        reservation.Status
	ExpiresAt     time.Time
}

type ReservationCommands interface {
	CreateHold(ctx context.Context, in CreateHoldInput) (*HoldResult, error)
	MarkPaid(ctx context.Context, reservationID uuid.UUID, paymentID *uuid.UUID) (*MarkPaidResult, error)
	Cancel(ctx context.Context, reservationID uuid.UUID, reason string) error
	CancelByOwner(ctx context.Context, reservationID, actorID uuid.UUID, actorRole user.Role) error
}

type reservationUseCaseImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	steps   bookingSteps
	metrics metrics.Metrics
	logger  *slog.Logger
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	clk clock.Clock,
	m metrics.Metrics,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:     uow,
		factory: factory,
		steps:   bookingSteps{clock: clk, logger: logger},
		metrics: m,
		logger:  logger,
	}
}

func (uc *reservationUseCaseImpl) CreateHold(ctx context.Context, in CreateHoldInput) (*HoldResult, error) {
	actor, err := reservation.NewActorInfo(in.ActorType, in.ActorID)
	if err != nil {
		return nil, validation(err)
	}

	if in.UseOwnCourt {
		return uc.createOwnCourtHold(ctx, in.UserID, actor, in.CustomVenue)
	}
	if in.SlotID == nil {
		return nil, ErrSlotRequired
	}
	slotID := *in.SlotID

	// unlocked fast path; the locked re-check below is authoritative
	paid, err := uc.uow.CommandReads().SlotHasPaidReservation(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if paid {
		uc.metrics.IncHoldConflict()
		return nil, ErrSlotConflict
	}

	var held *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		held = nil

		if _, err := tx.Slots().GetForUpdate(ctx, slotID); err != nil {
			return notFoundAs(err, ErrSlotNotFound)
		}
		paid, err := tx.Reservations().HasOtherPaidForSlot(ctx, slotID, uuid.Nil)
		if err != nil {
			return err
		}
		if paid {
			return ErrSlotConflict
		}
		if err := uc.steps.ledger.TryTransition(ctx, tx, slotID, slot.StatusOpen, slot.StatusHeld); err != nil {
			return err
		}

		r := uc.factory.NewSlotHold(slotID, in.UserID, actor)
		if err := tx.Reservations().Create(ctx, r); err != nil {
			return err
		}
		held = r
		return nil
	})
	if err != nil {
		if errs.Is(err, errs.ErrConflict) {
			uc.metrics.IncHoldConflict()
		}
		return nil, err
	}

	uc.metrics.IncHoldCreated()
	uc.logger.InfoContext(ctx, "slot held",
		"reservation_id", held.ID().String(),
		"slot_id", slotID.String(),
		"expires_at", held.ExpiresAt())
	return toHoldResult(held), nil
}

func (uc *reservationUseCaseImpl) createOwnCourtHold(ctx context.Context, userID uuid.UUID, actor reservation.ActorInfo, rawVenue []byte) (*HoldResult, error) {
	venue, err := reservation.NewCustomVenue(rawVenue)
	if err != nil {
		return nil, validation(err)
	}

	var held *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r := uc.factory.NewOwnCourtHold(userID, actor, venue)
		if err := tx.Reservations().Create(ctx, r); err != nil {
			return err
		}
		held = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.IncHoldCreated()
	return toHoldResult(held), nil
}

func (uc *reservationUseCaseImpl) MarkPaid(ctx context.Context, reservationID uuid.UUID, paymentID *uuid.UUID) (*MarkPaidResult, error) {
	var result *MarkPaidResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := uc.steps.markPaid(ctx, tx, reservationID, paymentID)
		result = res
		return err
	})
	if err != nil {
		return nil, err
	}
	if !result.AlreadyPaid {
		uc.metrics.IncReservationPaid()
	}
	return result, nil
}

func (uc *reservationUseCaseImpl) Cancel(ctx context.Context, reservationID uuid.UUID, reason string) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return uc.steps.cancel(ctx, tx, reservationID, reason)
	})
	if err != nil {
		return err
	}
	uc.metrics.IncReservationCancelled(reason)
	return nil
}

// CancelByOwner hides reservations the actor may not see behind ErrReservationNotFound.
func (uc *reservationUseCaseImpl) CancelByOwner(ctx context.Context, reservationID, actorID uuid.UUID, actorRole user.Role) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := uc.steps.lockReservation(ctx, tx, reservationID)
		if err != nil {
			return err
		}
		if !r.IsOwnedBy(actorID) && !actorRole.IsSuperAdmin() {
			return ErrReservationNotFound
		}
		return uc.steps.cancelLocked(ctx, tx, r, reservation.CancelReasonUser)
	})
	if err != nil {
		return err
	}
	uc.metrics.IncReservationCancelled(reservation.CancelReasonUser)
	return nil
}

func toHoldResult(r *reservation.Reservation) *HoldResult {
	out := &HoldResult{
		ReservationID: r.ID(),
		SlotID:        r.SlotID(),
		Status:        r.Status(),
	}
	if exp := r.ExpiresAt(); exp != nil {
		out.ExpiresAt = *exp
	}
	return out
}
