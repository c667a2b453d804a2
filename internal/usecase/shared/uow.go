package shared

import (
	"context"
	"time"

	"courtside/internal/domain/match"
	"courtside/internal/domain/outbox"
	"courtside/internal/domain/payment"
	"courtside/internal/domain/reservation"
	"courtside/internal/domain/slot"
	sqlc "courtside/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Slots() SlotRepository
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Matches() MatchRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are unlocked lookups the write side uses for fast-path checks.
type CommandReads interface {
	SlotByID(ctx context.Context, id uuid.UUID) (*slot.Slot, error)
	SlotHasPaidReservation(ctx context.Context, slotID uuid.UUID) (bool, error)
	PaymentEventExists(ctx context.Context, provider, providerEventID string) (bool, error)
	ExpiredPendingReservationIDs(ctx context.Context, now time.Time, limit int32) ([]uuid.UUID, error)
}

type SlotRepository interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (*slot.Slot, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, expected, next slot.Status) (bool, error)
	CourtSport(ctx context.Context, slotID uuid.UUID) (string, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	HasOtherPaidForSlot(ctx context.Context, slotID, excludeID uuid.UUID) (bool, error)
	MarkPaid(ctx context.Context, id uuid.UUID, paymentID *uuid.UUID) (bool, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string) (bool, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) (*payment.Payment, bool, error)
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*payment.Payment, error)
	FindByProviderRefForUpdate(ctx context.Context, provider, ref string) (*payment.Payment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, next payment.Status) (bool, error)
	InsertEvent(ctx context.Context, ev payment.Event) (uuid.UUID, bool, error)
}

type MatchRepository interface {
	CreateForReservation(ctx context.Context, reservationID uuid.UUID, sport string) (*match.Match, bool, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*match.Match, error)
	Start(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	Finalize(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	MaxSeq(ctx context.Context, matchID uuid.UUID) (int, error)
	InsertEvent(ctx context.Context, ev match.Event) (*match.Event, error)
	OfferReferee(ctx context.Context, matchID, refereeID uuid.UUID, at time.Time) (*match.RefereeAssignment, error)
	AcceptReferee(ctx context.Context, matchID, refereeID uuid.UUID, at time.Time) (*match.RefereeAssignment, error)
	HasAcceptedReferee(ctx context.Context, matchID, userID uuid.UUID) (bool, error)
	InsertAward(ctx context.Context, a match.Award) (*match.Award, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, now, leaseUntil time.Time, limit int32) ([]outbox.Job, error)
	UpdateJobStatus(ctx context.Context, jobID uuid.UUID, status outbox.Status, lastError *string) error
}
