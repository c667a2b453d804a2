package response

import (
	"encoding/json"
	"time"

	"courtside/internal/usecase/commands"
	"courtside/internal/usecase/queries"

	"github.com/google/uuid"
)

type HoldResponse struct {
	ReservationID uuid.UUID  `json:"reservation_id"`
	SlotID        *uuid.UUID `json:"slot_id,omitempty"`
	Status        string     `json:"status"`
	ExpiresAt     time.Time  `json:"expires_at"`
}

func FromHoldResult(r *commands.HoldResult) *HoldResponse {
	return &HoldResponse{
		ReservationID: r.ReservationID,
		SlotID:        r.SlotID,
		Status:        r.Status.String(),
		ExpiresAt:     r.ExpiresAt,
	}
}

type SlotSummaryResponse struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	PriceCents int32     `json:"price_cents"`
	Currency   string    `json:"currency"`
	CourtName  string    `json:"court_name"`
}

type ReservationResponse struct {
	ID             uuid.UUID            `json:"id"`
	SlotID         *uuid.UUID           `json:"slot_id,omitempty"`
	BookedByUserID uuid.UUID            `json:"booked_by_user_id"`
	ActorType      string               `json:"actor_type"`
	ActorID        *string              `json:"actor_id,omitempty"`
	UseOwnCourt    bool                 `json:"use_own_court"`
	CustomVenue    json.RawMessage      `json:"custom_venue,omitempty"`
	Status         string               `json:"status"`
	PaymentID      *uuid.UUID           `json:"payment_id,omitempty"`
	ExpiresAt      *time.Time           `json:"expires_at,omitempty"`
	CancelReason   *string              `json:"cancel_reason,omitempty"`
	Slot           *SlotSummaryResponse `json:"slot,omitempty" copier:"-"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	resp := copyFrom[ReservationResponse](v)
	if v.Slot != nil {
		resp.Slot = copyFrom[SlotSummaryResponse](v.Slot)
	}
	return resp
}

type ReservationListResponse struct {
	Items      []*ReservationResponse `json:"items"`
	NextCursor string                 `json:"next_cursor,omitempty"`
}

func FromReservationList(views []*queries.ReservationView, next *queries.Cursor) *ReservationListResponse {
	resp := &ReservationListResponse{Items: make([]*ReservationResponse, len(views))}
	for i, v := range views {
		resp.Items[i] = FromReservationView(v)
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}

type MarkPaidResponse struct {
	ReservationID uuid.UUID  `json:"reservation_id"`
	MatchID       *uuid.UUID `json:"match_id,omitempty"`
	AlreadyPaid   bool       `json:"already_paid"`
}

func FromMarkPaidResult(r *commands.MarkPaidResult) *MarkPaidResponse {
	return copyFrom[MarkPaidResponse](r)
}
