package repository

import (
	"context"

	"courtside/internal/domain/reservation"
	"courtside/internal/infra"
	"courtside/internal/infra/repository/converter"
	sqlc "courtside/internal/infra/sqlc/generated"
	"courtside/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/reservation_mock.go -package=repositorymock

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservation, error)
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservation, error)
	HasPaidReservationForSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.HasPaidReservationForSlotParams) (bool, error)
	MarkReservationPaid(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkReservationPaidParams) (int64, error)
	CancelReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelReservationParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	params := converter.ReservationToInfra(res)

	if _, err := r.queries.CreateReservation(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}

	return nil
}

func (r *ReservationRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return converter.ReservationFromInfra(row), nil
}

// HasOtherPaidForSlot reports whether a paid reservation other than excludeID holds the slot.
func (r *ReservationRepository) HasOtherPaidForSlot(ctx context.Context, slotID, excludeID uuid.UUID) (bool, error) {
	exists, err := r.queries.HasPaidReservationForSlot(ctx, r.db, sqlc.HasPaidReservationForSlotParams{
		SlotID:    pgconv.UUIDToPgtype(slotID),
		ExcludeID: excludeID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check paid reservations", err)
	}
	return exists, nil
}

// MarkPaid only moves a pending reservation; false means it was no longer pending.
func (r *ReservationRepository) MarkPaid(ctx context.Context, id uuid.UUID, paymentID *uuid.UUID) (bool, error) {
	affected, err := r.queries.MarkReservationPaid(ctx, r.db, sqlc.MarkReservationPaidParams{
		PaymentID: pgconv.UUIDPtrToPgtype(paymentID),
		ID:        id,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark reservation paid", err)
	}
	return affected == 1, nil
}

func (r *ReservationRepository) Cancel(ctx context.Context, id uuid.UUID, reason string) (bool, error) {
	affected, err := r.queries.CancelReservation(ctx, r.db, sqlc.CancelReservationParams{
		CancelReason: pgconv.StringToPgtype(reason),
		ID:           id,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel reservation", err)
	}
	return affected == 1, nil
}
