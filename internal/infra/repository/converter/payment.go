package converter

import (
	"courtside/internal/domain/payment"
	sqlc "courtside/internal/infra/sqlc/generated"
	"courtside/internal/pkg/pgconv"
)

func PaymentToInfra(p *payment.Payment) sqlc.CreatePaymentParams {
	return sqlc.CreatePaymentParams{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		Provider:      p.Provider,
		ProviderRef:   p.ProviderRef,
		AmountCents:   p.AmountCents,
		Currency:      p.Currency,
		Status:        p.Status.String(),
	}
}

func PaymentFromInfra(row sqlc.Payment) *payment.Payment {
	return &payment.Payment{
		ID:            row.ID,
		ReservationID: row.ReservationID,
		Provider:      row.Provider,
		ProviderRef:   row.ProviderRef,
		AmountCents:   row.AmountCents,
		Currency:      row.Currency,
		Status:        payment.Status(row.Status),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func PaymentEventToInfra(ev payment.Event) sqlc.InsertPaymentEventParams {
	return sqlc.InsertPaymentEventParams{
		PaymentID:         pgconv.UUIDPtrToPgtype(ev.PaymentID),
		Provider:          ev.Provider,
		ProviderEventID:   ev.ProviderEventID,
		EventType:         ev.EventType,
		SignatureVerified: ev.SignatureVerified,
		PayloadJson:       ev.Payload,
	}
}
