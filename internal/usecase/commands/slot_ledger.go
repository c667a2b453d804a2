package commands

import (
	"context"
	"slices"

	"courtside/internal/domain/slot"
	"courtside/internal/pkg/errs"
	"courtside/internal/usecase/shared"

	"github.com/google/uuid"
)

// SlotLedger is the only writer of slots.status. All methods must run inside the caller's transaction.
type SlotLedger struct{}

// TryTransition locks the slot and moves it from expected to next.
func (l SlotLedger) TryTransition(ctx context.Context, tx shared.Tx, slotID uuid.UUID, expected, next slot.Status) error {
	_, err := l.TryTransitionFrom(ctx, tx, slotID, []slot.Status{expected}, next)
	return err
}

// TryTransitionFrom accepts any of the expected statuses and returns the one found.
// A slot already in next (and next is expected) is left untouched.
func (l SlotLedger) TryTransitionFrom(ctx context.Context, tx shared.Tx, slotID uuid.UUID, expected []slot.Status, next slot.Status) (slot.Status, error) {
	s, err := tx.Slots().GetForUpdate(ctx, slotID)
	if err != nil {
		return "", notFoundAs(err, ErrSlotNotFound)
	}

	current := s.Status
	if !slices.Contains(expected, current) {
		return current, ErrSlotConflict
	}
	if current == next {
		return current, nil
	}
	if !slot.CanTransition(current, next) {
		return current, errs.Mark(errs.Wrapf(slot.ErrIllegalTransition, "%s to %s", current, next), errs.ErrConflict)
	}

	ok, err := tx.Slots().UpdateStatus(ctx, slotID, current, next)
	if err != nil {
		return current, err
	}
	if !ok {
		return current, ErrSlotConflict
	}
	return current, nil
}

// Release returns a held slot to open. Open slots, and slots already booked by another reservation, are left alone.
func (l SlotLedger) Release(ctx context.Context, tx shared.Tx, slotID uuid.UUID) error {
	_, err := l.TryTransitionFrom(ctx, tx, slotID, []slot.Status{slot.StatusHeld, slot.StatusOpen}, slot.StatusOpen)
	if errs.Is(err, ErrSlotConflict) {
		return nil
	}
	return err
}
