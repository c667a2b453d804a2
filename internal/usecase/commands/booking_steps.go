package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"courtside/internal/domain/match"
	"courtside/internal/domain/outbox"
	"courtside/internal/domain/reservation"
	"courtside/internal/domain/slot"
	"courtside/internal/pkg/clock"
	"courtside/internal/pkg/errs"
	"courtside/internal/usecase/shared"

	"github.com/google/uuid"
)

// bookingSteps are the reservation state changes shared by the HTTP commands, the
// webhook processor and the reaper. Each runs inside the caller's transaction.
// Lock order is reservation, then slot.
type bookingSteps struct {
	ledger SlotLedger
	clock  clock.Clock
	logger *slog.Logger
}

type MarkPaidResult struct {
	ReservationID uuid.UUID
	MatchID       *uuid.UUID
	AlreadyPaid   bool
}

func (s bookingSteps) lockReservation(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, error) {
	r, err := tx.Reservations().GetForUpdate(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrReservationNotFound)
	}
	return r, nil
}

func (s bookingSteps) markPaid(ctx context.Context, tx shared.Tx, id uuid.UUID, paymentID *uuid.UUID) (*MarkPaidResult, error) {
	r, err := s.lockReservation(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	switch perr := r.EnsurePayable(); {
	case errs.Is(perr, reservation.ErrAlreadyPaid):
		return &MarkPaidResult{ReservationID: id, AlreadyPaid: true}, nil
	case perr != nil:
		return nil, errs.Wrapf(ErrReservationConflict, "reservation is %s", r.Status())
	}

	sport := match.UnknownSport
	if slotID := r.SlotID(); slotID != nil {
		taken, err := tx.Reservations().HasOtherPaidForSlot(ctx, *slotID, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errs.Wrap(ErrSlotConflict, "slot already paid by another reservation")
		}
		if _, err := s.ledger.TryTransitionFrom(ctx, tx, *slotID, []slot.Status{slot.StatusHeld, slot.StatusOpen}, slot.StatusBooked); err != nil {
			return nil, err
		}
		courtSport, err := tx.Slots().CourtSport(ctx, *slotID)
		if err != nil {
			return nil, err
		}
		if courtSport != "" {
			sport = courtSport
		}
	} else if v := r.CustomVenue(); v != nil && v.Sport() != "" {
		sport = v.Sport()
	}

	ok, err := tx.Reservations().MarkPaid(ctx, id, paymentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrReservationConflict
	}

	result := &MarkPaidResult{ReservationID: id}
	m, created, err := tx.Matches().CreateForReservation(ctx, id, sport)
	if err != nil {
		return nil, err
	}
	if created {
		result.MatchID = &m.ID
		if err := enqueue(ctx, tx, s.clock, outbox.KindMatch, outbox.TopicMatchCreated, outbox.MatchCreated{
			MatchID:       m.ID,
			ReservationID: id,
			Sport:         m.Sport,
		}); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s bookingSteps) cancel(ctx context.Context, tx shared.Tx, id uuid.UUID, reason string) error {
	r, err := s.lockReservation(ctx, tx, id)
	if err != nil {
		return err
	}
	return s.cancelLocked(ctx, tx, r, reason)
}

func (s bookingSteps) cancelLocked(ctx context.Context, tx shared.Tx, r *reservation.Reservation, reason string) error {
	if err := r.EnsureCancellable(); err != nil {
		return errs.Wrapf(ErrReservationConflict, "reservation is %s", r.Status())
	}

	ok, err := tx.Reservations().Cancel(ctx, r.ID(), reason)
	if err != nil {
		return err
	}
	if !ok {
		return ErrReservationConflict
	}

	if slotID := r.SlotID(); slotID != nil {
		if err := s.ledger.Release(ctx, tx, *slotID); err != nil {
			return err
		}
	}
	return nil
}

func enqueue(ctx context.Context, tx shared.Tx, clk clock.Clock, kind, topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrapf(err, "marshal %s payload", topic)
	}
	return tx.Notifications().CreateJob(ctx, kind, topic, body, clk.Now())
}
