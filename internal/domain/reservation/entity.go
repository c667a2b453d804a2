package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotPending  = errors.New("reservation is not pending")
	ErrAlreadyPaid = errors.New("reservation is already paid")
)

type Reservation struct {
	id           uuid.UUID
	slotID       *uuid.UUID
	bookedBy     uuid.UUID
	actor        ActorInfo
	useOwnCourt  bool
	customVenue  *CustomVenue
	status       Status
	paymentID    *uuid.UUID
	expiresAt    *time.Time
	cancelReason *string
	createdAt    time.Time
	updatedAt    time.Time
}

type ReconstructParams struct {
	ID           uuid.UUID
	SlotID       *uuid.UUID
	BookedBy     uuid.UUID
	ActorType    string
	ActorID      *string
	UseOwnCourt  bool
	CustomVenue  []byte
	Status       string
	PaymentID    *uuid.UUID
	ExpiresAt    *time.Time
	CancelReason *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Reconstruct rebuilds a reservation from persisted state without re-validating it.
func Reconstruct(p ReconstructParams) *Reservation {
	r := &Reservation{
		id:           p.ID,
		slotID:       p.SlotID,
		bookedBy:     p.BookedBy,
		actor:        ActorInfo{typ: ActorType(p.ActorType), id: p.ActorID},
		useOwnCourt:  p.UseOwnCourt,
		status:       Status(p.Status),
		paymentID:    p.PaymentID,
		expiresAt:    p.ExpiresAt,
		cancelReason: p.CancelReason,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}
	if len(p.CustomVenue) > 0 {
		r.customVenue = &CustomVenue{raw: p.CustomVenue}
	}
	return r
}

// EnsureCancellable fails unless the reservation is still pending.
func (r *Reservation) EnsureCancellable() error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	return nil
}

// EnsurePayable reports ErrAlreadyPaid for an idempotent repeat and ErrNotPending otherwise.
func (r *Reservation) EnsurePayable() error {
	switch r.status {
	case StatusPending:
		return nil
	case StatusPaid:
		return ErrAlreadyPaid
	default:
		return ErrNotPending
	}
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.bookedBy == userID
}

func (r *Reservation) ID() uuid.UUID             { return r.id }
func (r *Reservation) SlotID() *uuid.UUID        { return r.slotID }
func (r *Reservation) BookedBy() uuid.UUID       { return r.bookedBy }
func (r *Reservation) Actor() ActorInfo          { return r.actor }
func (r *Reservation) UseOwnCourt() bool         { return r.useOwnCourt }
func (r *Reservation) CustomVenue() *CustomVenue { return r.customVenue }
func (r *Reservation) Status() Status            { return r.status }
func (r *Reservation) PaymentID() *uuid.UUID     { return r.paymentID }
func (r *Reservation) ExpiresAt() *time.Time     { return r.expiresAt }
func (r *Reservation) CancelReason() *string     { return r.cancelReason }
func (r *Reservation) CreatedAt() time.Time      { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time      { return r.updatedAt }
