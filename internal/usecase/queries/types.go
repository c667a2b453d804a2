package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SlotSummary is the slot and court data joined onto a reservation.
type SlotSummary struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	PriceCents int32     `json:"price_cents"`
	Currency   string    `json:"currency"`
	CourtName  string    `json:"court_name"`
}

type ReservationView struct {
	ID             uuid.UUID       `json:"id"`
	SlotID         *uuid.UUID      `json:"slot_id,omitempty"`
	BookedByUserID uuid.UUID       `json:"booked_by_user_id"`
	ActorType      string          `json:"actor_type"`
	ActorID        *string         `json:"actor_id,omitempty"`
	UseOwnCourt    bool            `json:"use_own_court"`
	CustomVenue    json.RawMessage `json:"custom_venue,omitempty"`
	Status         string          `json:"status"`
	PaymentID      *uuid.UUID      `json:"payment_id,omitempty"`
	ExpiresAt      *time.Time      `json:"expires_at,omitempty"`
	CancelReason   *string         `json:"cancel_reason,omitempty"`
	Slot           *SlotSummary    `json:"slot,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type SlotView struct {
	ID         uuid.UUID `json:"id"`
	CourtID    uuid.UUID `json:"court_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	PriceCents int32     `json:"price_cents"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
}

type MatchView struct {
	ID            uuid.UUID  `json:"id"`
	ReservationID uuid.UUID  `json:"reservation_id"`
	Sport         string     `json:"sport"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	FinalizedAt   *time.Time `json:"finalized_at,omitempty"`
}

type MatchEventView struct {
	Seq             int             `json:"seq"`
	Timestamp       time.Time       `json:"ts"`
	Type            string          `json:"type"`
	Payload         json.RawMessage `json:"payload"`
	CreatedByUserID uuid.UUID       `json:"created_by_user_id"`
	CreatedAt       time.Time       `json:"created_at"`
}

type MatchAwardView struct {
	ID              uuid.UUID `json:"id"`
	MatchID         uuid.UUID `json:"match_id"`
	Kind            string    `json:"kind"`
	WinnerRef       string    `json:"winner_ref"`
	DecidedByUserID uuid.UUID `json:"decided_by_user_id"`
	DecidedAt       time.Time `json:"decided_at"`
}

type MatchSnapshotView struct {
	MatchID  uuid.UUID         `json:"match_id"`
	Status   string            `json:"status"`
	Events   []*MatchEventView `json:"events"`
	Checksum string            `json:"checksum"`
}
