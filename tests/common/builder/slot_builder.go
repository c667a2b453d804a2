//go:build unit || e2e

package builder

import (
	"time"

	"courtside/internal/domain/slot"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	ID         uuid.UUID
	CourtID    uuid.UUID
	Start      time.Time
	End        time.Time
	PriceCents int32
	Currency   string
	Status     slot.Status
}

func NewSlotBuilder() *SlotBuilder {
	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour)
	return &SlotBuilder{
		ID:         uuid.New(),
		CourtID:    uuid.New(),
		Start:      start,
		End:        start.Add(time.Hour),
		PriceCents: 4000,
		Currency:   "USD",
		Status:     slot.StatusOpen,
	}
}

func (b *SlotBuilder) WithID(id uuid.UUID) *SlotBuilder {
	b.ID = id
	return b
}

func (b *SlotBuilder) WithStatus(s slot.Status) *SlotBuilder {
	b.Status = s
	return b
}

func (b *SlotBuilder) BuildDomain() *slot.Slot {
	return &slot.Slot{
		ID:         b.ID,
		CourtID:    b.CourtID,
		Start:      b.Start,
		End:        b.End,
		PriceCents: b.PriceCents,
		Currency:   b.Currency,
		Status:     b.Status,
	}
}
