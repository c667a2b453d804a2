package response

import (
	"courtside/internal/usecase/commands"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	Provider      string    `json:"provider"`
	ProviderRef   string    `json:"provider_ref"`
	AmountCents   int32     `json:"amount_cents"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	CheckoutURL   string    `json:"checkout_url"`
}

func FromInitiatePaymentResult(r *commands.InitiatePaymentResult) *PaymentResponse {
	resp := copyFrom[PaymentResponse](r.Payment)
	resp.CheckoutURL = r.CheckoutURL
	return resp
}

type WebhookResponse struct {
	Status string `json:"status"`
}

var (
	WebhookProcessed        = WebhookResponse{Status: "processed"}
	WebhookAlreadyProcessed = WebhookResponse{Status: "already_processed"}
)
