package response

import (
	"time"

	"courtside/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID         uuid.UUID `json:"id"`
	CourtID    uuid.UUID `json:"court_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	PriceCents int32     `json:"price_cents"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	out := make([]*SlotResponse, len(views))
	for i, v := range views {
		out[i] = copyFrom[SlotResponse](v)
	}
	return out
}
