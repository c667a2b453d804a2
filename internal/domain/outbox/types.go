package outbox

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusQueued Status = "queued"
	StatusSent   Status = "sent"
	StatusFailed Status = "failed"
)

// Topics double as routing keys on the event exchange.
const (
	TopicMatchCreated    = "match.created"
	TopicMatchFinalized  = "match.finalized"
	TopicPaymentOrphaned = "payment.orphaned"
)

const (
	KindMatch   = "match"
	KindPayment = "payment"
)

type Job struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Status    Status
	Attempts  int
	LastError *string
}

type MatchCreated struct {
	MatchID       uuid.UUID `json:"match_id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	Sport         string    `json:"sport"`
}

type MatchFinalized struct {
	MatchID     uuid.UUID `json:"match_id"`
	FinalizedAt time.Time `json:"finalized_at"`
	EventCount  int       `json:"event_count"`
}

// PaymentOrphaned flags captured money whose reservation could not be marked paid.
type PaymentOrphaned struct {
	PaymentID       uuid.UUID `json:"payment_id"`
	ReservationID   uuid.UUID `json:"reservation_id"`
	Provider        string    `json:"provider"`
	ProviderEventID string    `json:"provider_event_id"`
	Status          string    `json:"status"`
	Reason          string    `json:"reason"`
}
