package repository

import (
	"context"

	"courtside/internal/domain/slot"
	"courtside/internal/infra"
	"courtside/internal/infra/repository/converter"
	sqlc "courtside/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=slot.go -destination=../../../tests/mock/repository/slot_mock.go -package=repositorymock

type SlotWriteQueries interface {
	GetSlotForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Slot, error)
	UpdateSlotStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSlotStatusParams) (int64, error)
	GetCourtSportBySlotID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (string, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
	db      sqlc.DBTX
}

func NewSlotRepository(queries SlotWriteQueries, db sqlc.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

// GetForUpdate takes the row lock that serialises every status change of the slot.
func (r *SlotRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*slot.Slot, error) {
	row, err := r.queries.GetSlotForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock slot", err)
	}
	return converter.SlotFromInfra(row), nil
}

// UpdateStatus is a compare-and-set; false means the slot was not in the expected status.
func (r *SlotRepository) UpdateStatus(ctx context.Context, id uuid.UUID, expected, next slot.Status) (bool, error) {
	affected, err := r.queries.UpdateSlotStatus(ctx, r.db, sqlc.UpdateSlotStatusParams{
		NextStatus:     next.String(),
		ID:             id,
		ExpectedStatus: expected.String(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to update slot status", err)
	}
	return affected == 1, nil
}

func (r *SlotRepository) CourtSport(ctx context.Context, slotID uuid.UUID) (string, error) {
	sport, err := r.queries.GetCourtSportBySlotID(ctx, r.db, slotID)
	if err != nil {
		return "", infra.WrapRepoErr("failed to get court sport", err)
	}
	return sport, nil
}
