//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"courtside/internal/domain/match"

	"github.com/google/uuid"
)

type MatchBuilder struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Sport         string
	Status        match.Status
	CreatedAt     time.Time
}

func NewMatchBuilder() *MatchBuilder {
	return &MatchBuilder{
		ID:            uuid.New(),
		ReservationID: uuid.New(),
		Sport:         "padel",
		Status:        match.StatusScheduled,
		CreatedAt:     time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *MatchBuilder) WithStatus(s match.Status) *MatchBuilder {
	b.Status = s
	return b
}

func (b *MatchBuilder) BuildDomain() *match.Match {
	m := &match.Match{
		ID:            b.ID,
		ReservationID: b.ReservationID,
		Sport:         b.Sport,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
	if b.Status != match.StatusScheduled {
		started := b.CreatedAt.Add(time.Hour)
		m.StartedAt = &started
	}
	if b.Status == match.StatusFinal {
		finalized := b.CreatedAt.Add(3 * time.Hour)
		m.FinalizedAt = &finalized
	}
	return m
}

// Events returns n sequential events starting with KICKOFF.
func (b *MatchBuilder) Events(n int) []match.Event {
	events := make([]match.Event, 0, n)
	for i := 1; i <= n; i++ {
		typ := "POINT"
		if i == 1 {
			typ = match.EventKickoff
		}
		events = append(events, match.Event{
			ID:              uuid.New(),
			MatchID:         b.ID,
			Seq:             i,
			Timestamp:       b.CreatedAt.Add(time.Duration(i) * time.Minute),
			Type:            typ,
			Payload:         json.RawMessage(`{}`),
			CreatedByUserID: uuid.Nil,
			CreatedAt:       b.CreatedAt.Add(time.Duration(i) * time.Minute),
		})
	}
	return events
}
