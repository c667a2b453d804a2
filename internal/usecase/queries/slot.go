package queries

import (
	"context"
	"time"

	"courtside/internal/pkg/clock"
	"courtside/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=slot.go -destination=../../../tests/mock/queries/slot_mock.go -package=queriesmock

const (
	defaultSlotWindow = 7 * 24 * time.Hour
	maxSlotWindow     = 31 * 24 * time.Hour
)

var ErrInvalidSlotRange = errs.Mark(errs.New("invalid slot range"), errs.ErrValidation)

type SlotReadStore interface {
	ListAvailable(ctx context.Context, courtID uuid.UUID, from, to time.Time) ([]*SlotView, error)
}

type SlotQueries interface {
	// ListAvailable returns OPEN and HELD slots of a court within [from, to].
	// A zero from means now; a zero to means from plus one week.
	ListAvailable(ctx context.Context, courtID uuid.UUID, from, to time.Time) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	store SlotReadStore
	clock clock.Clock
}

func NewSlotQueries(store SlotReadStore, clk clock.Clock) SlotQueries {
	return &slotQueriesImpl{store: store, clock: clk}
}

func (q *slotQueriesImpl) ListAvailable(ctx context.Context, courtID uuid.UUID, from, to time.Time) ([]*SlotView, error) {
	if from.IsZero() {
		from = q.clock.Now()
	}
	if to.IsZero() {
		to = from.Add(defaultSlotWindow)
	}
	if !to.After(from) || to.Sub(from) > maxSlotWindow {
		return nil, ErrInvalidSlotRange
	}
	return q.store.ListAvailable(ctx, courtID, from, to)
}
