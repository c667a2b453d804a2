package request

import (
	"encoding/json"

	"courtside/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	SlotID      *uuid.UUID      `json:"slot_id"`
	ActorType   string          `json:"actor_type" binding:"required"`
	ActorID     *string         `json:"actor_id,omitempty"`
	UseOwnCourt bool            `json:"use_own_court"`
	CustomVenue json.RawMessage `json:"custom_venue,omitempty"`
}

func (r CreateReservationRequest) ToInput(userID uuid.UUID) commands.CreateHoldInput {
	return commands.CreateHoldInput{
		SlotID:      r.SlotID,
		UserID:      userID,
		ActorType:   r.ActorType,
		ActorID:     r.ActorID,
		UseOwnCourt: r.UseOwnCourt,
		CustomVenue: r.CustomVenue,
	}
}

// MarkPaidRequest is the operator override used when a capture never reached the webhook.
type MarkPaidRequest struct {
	PaymentID *uuid.UUID `json:"payment_id"`
}
