package payment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusInitiated  Status = "initiated"
	StatusAuthorized Status = "authorized"
	StatusCaptured   Status = "captured"
	StatusFailed     Status = "failed"
	StatusRefunded   Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

// Provider notifications arrive out of order, so a late event must never move a
// payment backwards. failed→captured covers a retried charge that succeeds after a decline.
var transitions = map[Status][]Status{
	StatusInitiated:  {StatusAuthorized, StatusCaptured, StatusFailed},
	StatusAuthorized: {StatusCaptured, StatusFailed},
	StatusFailed:     {StatusCaptured},
	StatusCaptured:   {StatusRefunded},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// SourcesOf lists the statuses a payment may move to next from.
func SourcesOf(next Status) []Status {
	var out []Status
	for _, from := range []Status{StatusInitiated, StatusAuthorized, StatusCaptured, StatusFailed, StatusRefunded} {
		if CanTransition(from, next) {
			out = append(out, from)
		}
	}
	return out
}

type Payment struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Provider      string
	ProviderRef   string
	AmountCents   int32
	Currency      string
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewInitiated builds a fresh payment whose provider reference is derived from its id.
func NewInitiated(reservationID uuid.UUID, provider string, amountCents int32, currency string) *Payment {
	id := uuid.New()
	return &Payment{
		ID:            id,
		ReservationID: reservationID,
		Provider:      provider,
		ProviderRef:   ProviderRefFor(id),
		AmountCents:   amountCents,
		Currency:      currency,
		Status:        StatusInitiated,
	}
}

func ProviderRefFor(id uuid.UUID) string {
	return fmt.Sprintf("pay_%x", id[:])
}

func CheckoutURL(id uuid.UUID) string {
	return "/payments/" + id.String() + "/checkout"
}

// Event is one inbound provider notification, stored verbatim.
type Event struct {
	PaymentID         *uuid.UUID
	Provider          string
	ProviderEventID   string
	EventType         string
	SignatureVerified bool
	Payload           []byte
}
