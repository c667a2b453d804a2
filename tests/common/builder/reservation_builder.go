//go:build unit || e2e

package builder

import (
	"time"

	"courtside/internal/domain/reservation"
	sqlc "courtside/internal/infra/sqlc/generated"
	"courtside/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID           uuid.UUID
	SlotID       *uuid.UUID
	UserID       uuid.UUID
	ActorType    string
	ActorID      *string
	UseOwnCourt  bool
	CustomVenue  []byte
	Status       reservation.Status
	PaymentID    *uuid.UUID
	ExpiresAt    *time.Time
	CancelReason *string
	CreatedAt    time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	slotID := uuid.New()
	expires := now.Add(15 * time.Minute)
	return &ReservationBuilder{
		ID:        uuid.New(),
		SlotID:    &slotID,
		UserID:    uuid.New(),
		ActorType: reservation.ActorIndividual.String(),
		Status:    reservation.StatusPending,
		ExpiresAt: &expires,
		CreatedAt: now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	if s != reservation.StatusPending {
		b.ExpiresAt = nil
	}
	return b
}

func (b *ReservationBuilder) WithSlot(id uuid.UUID) *ReservationBuilder {
	b.SlotID = &id
	return b
}

func (b *ReservationBuilder) WithUser(id uuid.UUID) *ReservationBuilder {
	b.UserID = id
	return b
}

func (b *ReservationBuilder) OwnCourt(venue string) *ReservationBuilder {
	b.SlotID = nil
	b.UseOwnCourt = true
	b.CustomVenue = []byte(venue)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.Reconstruct(reservation.ReconstructParams{
		ID:           b.ID,
		SlotID:       b.SlotID,
		BookedBy:     b.UserID,
		ActorType:    b.ActorType,
		ActorID:      b.ActorID,
		UseOwnCourt:  b.UseOwnCourt,
		CustomVenue:  b.CustomVenue,
		Status:       b.Status.String(),
		PaymentID:    b.PaymentID,
		ExpiresAt:    b.ExpiresAt,
		CancelReason: b.CancelReason,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.CreatedAt,
	})
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservation {
	return sqlc.Reservation{
		ID:              b.ID,
		SlotID:          pgconv.UUIDPtrToPgtype(b.SlotID),
		BookedByUserID:  b.UserID,
		ActorType:       b.ActorType,
		ActorID:         pgconv.StringPtrToPgtype(b.ActorID),
		UseOwnCourt:     b.UseOwnCourt,
		CustomVenueJson: b.CustomVenue,
		Status:          b.Status.String(),
		PaymentID:       pgconv.UUIDPtrToPgtype(b.PaymentID),
		ExpiresAt:       pgconv.TimePtrToPgtype(b.ExpiresAt),
		CancelReason:    pgconv.StringPtrToPgtype(b.CancelReason),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
	}
}
