package readstore

import (
	"context"
	"time"

	"courtside/internal/domain/slot"
	"courtside/internal/infra"
	"courtside/internal/infra/repository/converter"
	sqlc "courtside/internal/infra/sqlc/generated"
	"courtside/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/readstore/booking_mock.go -package=readstoremock

type BookingQueries interface {
	GetSlotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Slot, error)
	HasPaidReservationForSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.HasPaidReservationForSlotParams) (bool, error)
	PaymentEventExists(ctx context.Context, db sqlc.DBTX, arg sqlc.PaymentEventExistsParams) (bool, error)
	ListExpiredPendingReservationIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListExpiredPendingReservationIDsParams) ([]uuid.UUID, error)
}

// BookingReadStore backs the unlocked lookups of the write side.
type BookingReadStore struct {
	queries BookingQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) SlotByID(ctx context.Context, id uuid.UUID) (*slot.Slot, error) {
	row, err := r.queries.GetSlotByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find slot", err)
	}
	return converter.SlotFromInfra(row), nil
}

func (r *BookingReadStore) SlotHasPaidReservation(ctx context.Context, slotID uuid.UUID) (bool, error) {
	exists, err := r.queries.HasPaidReservationForSlot(ctx, r.db, sqlc.HasPaidReservationForSlotParams{
		SlotID:    pgconv.UUIDToPgtype(slotID),
		ExcludeID: uuid.Nil,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check paid reservation", err)
	}
	return exists, nil
}

func (r *BookingReadStore) PaymentEventExists(ctx context.Context, provider, providerEventID string) (bool, error) {
	exists, err := r.queries.PaymentEventExists(ctx, r.db, sqlc.PaymentEventExistsParams{
		Provider:        provider,
		ProviderEventID: providerEventID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check payment event", err)
	}
	return exists, nil
}

func (r *BookingReadStore) ExpiredPendingReservationIDs(ctx context.Context, now time.Time, limit int32) ([]uuid.UUID, error) {
	ids, err := r.queries.ListExpiredPendingReservationIDs(ctx, r.db, sqlc.ListExpiredPendingReservationIDsParams{
		Now:       pgconv.TimeToPgtype(now),
		BatchSize: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired holds", err)
	}
	return ids, nil
}
