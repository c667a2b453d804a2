package request

import "github.com/google/uuid"

type InitiatePaymentRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
}
