package converter

import (
	"courtside/internal/domain/slot"
	sqlc "courtside/internal/infra/sqlc/generated"
	"courtside/internal/pkg/pgconv"
)

func SlotFromInfra(row sqlc.Slot) *slot.Slot {
	return &slot.Slot{
		ID:         row.ID,
		CourtID:    row.CourtID,
		Start:      pgconv.TimeFromPgtype(row.StartTs),
		End:        pgconv.TimeFromPgtype(row.EndTs),
		PriceCents: row.PriceCents,
		Currency:   row.Currency,
		Status:     slot.Status(row.Status),
	}
}
