package commands

import (
	"context"
	"log/slog"

	"courtside/internal/domain/payment"
	"courtside/internal/pkg/errs"
	"courtside/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/commands/payment_mock.go -package=commandsmock

type PaymentSettings struct {
	Provider        string
	DefaultCurrency string
}

type InitiatePaymentResult struct {
	Payment     *payment.Payment
	CheckoutURL string
	Created     bool
}

type PaymentCommands interface {
	InitiatePayment(ctx context.Context, reservationID, userID uuid.UUID) (*InitiatePaymentResult, error)
}

type paymentUseCaseImpl struct {
	uow      shared.UnitOfWork
	settings PaymentSettings
	logger   *slog.Logger
}

func NewPaymentUseCase(uow shared.UnitOfWork, settings PaymentSettings, logger *slog.Logger) PaymentCommands {
	return &paymentUseCaseImpl{uow: uow, settings: settings, logger: logger}
}

// InitiatePayment is idempotent per reservation: a second call returns the existing payment.
func (uc *paymentUseCaseImpl) InitiatePayment(ctx context.Context, reservationID, userID uuid.UUID) (*InitiatePaymentResult, error) {
	var result *InitiatePaymentResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil

		r, err := tx.Reservations().GetForUpdate(ctx, reservationID)
		if err != nil {
			return notFoundAs(err, ErrReservationNotFound)
		}
		if !r.IsOwnedBy(userID) {
			return ErrReservationNotFound
		}

		existing, err := tx.Payments().FindByReservationID(ctx, reservationID)
		switch {
		case err == nil:
			result = &InitiatePaymentResult{Payment: existing, CheckoutURL: payment.CheckoutURL(existing.ID)}
			return nil
		case !errs.Is(err, errs.ErrNotFound):
			return err
		}

		if err := r.EnsureCancellable(); err != nil {
			return errs.Wrapf(ErrReservationConflict, "reservation is %s", r.Status())
		}

		amount, currency := int32(0), uc.settings.DefaultCurrency
		if slotID := r.SlotID(); slotID != nil {
			s, err := tx.Reads().SlotByID(ctx, *slotID)
			if err != nil {
				return notFoundAs(err, ErrSlotNotFound)
			}
			amount, currency = s.PriceCents, s.Currency
		}

		p := payment.NewInitiated(reservationID, uc.settings.Provider, amount, currency)
		created, ok, err := tx.Payments().Create(ctx, p)
		if err != nil {
			return err
		}
		if !ok {
			// lost the race against a concurrent initiate for the same reservation
			created, err = tx.Payments().FindByReservationID(ctx, reservationID)
			if err != nil {
				return err
			}
		}
		result = &InitiatePaymentResult{Payment: created, CheckoutURL: payment.CheckoutURL(created.ID), Created: ok}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Created {
		uc.logger.InfoContext(ctx, "payment initiated",
			"payment_id", result.Payment.ID.String(),
			"reservation_id", reservationID.String(),
			"provider_ref", result.Payment.ProviderRef)
	}
	return result, nil
}
