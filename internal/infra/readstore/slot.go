package readstore

import (
	"context"
	"time"

	"courtside/internal/infra"
	sqlc "courtside/internal/infra/sqlc/generated"
	"courtside/internal/pkg/pgconv"
	"courtside/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=slot.go -destination=../../../tests/mock/readstore/slot_mock.go -package=readstoremock

type SlotViewQueries interface {
	ListAvailableSlotsByCourt(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailableSlotsByCourtParams) ([]sqlc.Slot, error)
}

type SlotReadStore struct {
	queries SlotViewQueries
	db      sqlc.DBTX
}

func NewSlotReadStore(queries SlotViewQueries, db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SlotReadStore) ListAvailable(ctx context.Context, courtID uuid.UUID, from, to time.Time) ([]*queries.SlotView, error) {
	rows, err := r.queries.ListAvailableSlotsByCourt(ctx, r.db, sqlc.ListAvailableSlotsByCourtParams{
		CourtID: courtID,
		FromTs:  pgconv.TimeToPgtype(from),
		ToTs:    pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available slots", err)
	}

	result := make([]*queries.SlotView, len(rows))
	for i, row := range rows {
		result[i] = &queries.SlotView{
			ID:         row.ID,
			CourtID:    row.CourtID,
			Start:      pgconv.TimeFromPgtype(row.StartTs),
			End:        pgconv.TimeFromPgtype(row.EndTs),
			PriceCents: row.PriceCents,
			Currency:   row.Currency,
			Status:     row.Status,
		}
	}
	return result, nil
}
