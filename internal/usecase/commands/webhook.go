package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"courtside/internal/domain/outbox"
	"courtside/internal/domain/payment"
	"courtside/internal/domain/reservation"
	"courtside/internal/pkg/clock"
	"courtside/internal/pkg/errs"
	"courtside/internal/pkg/metrics"
	"courtside/internal/usecase/shared"
)

//go:generate mockgen -source=webhook.go -destination=../../../tests/mock/commands/webhook_mock.go -package=commandsmock

type Outcome string

const (
	OutcomeAccepted  Outcome = "accepted"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeRejected  Outcome = "rejected"
)

const (
	ReasonMissingProvider  = "missing_provider"
	ReasonMalformedPayload = "malformed_payload"
	ReasonMissingEventID   = "missing_event_id"
)

type IngestResult struct {
	Outcome Outcome
	Reason  string
	EventID string
}

// AuthFailure reports a rejection caused by the signature check rather than the payload.
func (r *IngestResult) AuthFailure() bool {
	if r.Outcome != OutcomeRejected {
		return false
	}
	switch payment.VerifyOutcome(r.Reason) {
	case payment.VerifyMissingHeader, payment.VerifyMalformedHeader, payment.VerifyTimestampSkew, payment.VerifySignatureMismatch:
		return true
	default:
		return false
	}
}

type WebhookSettings struct {
	Secrets   map[string]string
	Tolerance time.Duration
}

type WebhookCommands interface {
	Ingest(ctx context.Context, provider string, rawPayload []byte, signatureHeader string) (*IngestResult, error)
}

type webhookUseCaseImpl struct {
	uow      shared.UnitOfWork
	steps    bookingSteps
	settings WebhookSettings
	clock    clock.Clock
	metrics  metrics.Metrics
	logger   *slog.Logger
}

func NewWebhookUseCase(
	uow shared.UnitOfWork,
	settings WebhookSettings,
	clk clock.Clock,
	m metrics.Metrics,
	logger *slog.Logger,
) WebhookCommands {
	secrets := make(map[string]string, len(settings.Secrets))
	for provider, secret := range settings.Secrets {
		secrets[normalizeProvider(provider)] = secret
	}
	settings.Secrets = secrets

	return &webhookUseCaseImpl{
		uow:      uow,
		steps:    bookingSteps{clock: clk, logger: logger},
		settings: settings,
		clock:    clk,
		metrics:  m,
		logger:   logger,
	}
}

func (uc *webhookUseCaseImpl) Ingest(ctx context.Context, provider string, rawPayload []byte, signatureHeader string) (*IngestResult, error) {
	result, err := uc.ingest(ctx, normalizeProvider(provider), rawPayload, signatureHeader)
	if err != nil {
		return nil, err
	}
	uc.metrics.IncWebhook(string(result.Outcome))
	return result, nil
}

func (uc *webhookUseCaseImpl) ingest(ctx context.Context, provider string, raw []byte, signatureHeader string) (*IngestResult, error) {
	if provider == "" {
		return rejected(ReasonMissingProvider, ""), nil
	}

	n, err := payment.ParseNotification(raw)
	switch {
	case errs.Is(err, payment.ErrMissingEventID):
		return rejected(ReasonMissingEventID, ""), nil
	case err != nil:
		return rejected(ReasonMalformedPayload, ""), nil
	}

	exists, err := uc.uow.CommandReads().PaymentEventExists(ctx, provider, n.EventID)
	if err != nil {
		return nil, err
	}
	if exists {
		return &IngestResult{Outcome: OutcomeDuplicate, EventID: n.EventID}, nil
	}

	verified := false
	if secret, ok := uc.settings.Secrets[provider]; ok {
		outcome := payment.NewVerifier(secret, uc.settings.Tolerance).Verify(signatureHeader, raw, uc.clock.Now())
		if !outcome.OK() {
			uc.logger.WarnContext(ctx, "webhook signature rejected",
				"provider", provider,
				"event_id", n.EventID,
				"outcome", string(outcome))
			return rejected(string(outcome), n.EventID), nil
		}
		verified = true
	}

	var applied applyResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		applied = applyResult{}
		return uc.apply(ctx, tx, provider, n, raw, verified, &applied)
	})
	if err != nil {
		return nil, err
	}

	switch {
	case applied.paid:
		uc.metrics.IncReservationPaid()
	case applied.cancelled:
		uc.metrics.IncReservationCancelled(reservation.CancelReasonPaymentFailed)
	}
	return &IngestResult{Outcome: applied.outcome, EventID: n.EventID}, nil
}

type applyResult struct {
	outcome   Outcome
	paid      bool
	cancelled bool
}

func (uc *webhookUseCaseImpl) apply(
	ctx context.Context,
	tx shared.Tx,
	provider string,
	n payment.Notification,
	raw []byte,
	verified bool,
	out *applyResult,
) error {
	var p *payment.Payment
	if n.PaymentRef != "" {
		found, err := tx.Payments().FindByProviderRefForUpdate(ctx, provider, n.PaymentRef)
		switch {
		case err == nil:
			p = found
		case !errs.Is(err, errs.ErrNotFound):
			return err
		}
	}

	ev := payment.Event{
		Provider:          provider,
		ProviderEventID:   n.EventID,
		EventType:         n.StatusToken,
		SignatureVerified: verified,
		Payload:           raw,
	}
	if p != nil {
		ev.PaymentID = &p.ID
	}
	if _, inserted, err := tx.Payments().InsertEvent(ctx, ev); err != nil {
		return err
	} else if !inserted {
		out.outcome = OutcomeDuplicate
		return nil
	}
	out.outcome = OutcomeAccepted

	if p == nil {
		uc.logger.InfoContext(ctx, "webhook recorded without matching payment",
			"provider", provider,
			"event_id", n.EventID,
			"payment_ref", n.PaymentRef)
		return nil
	}

	effect := n.Effect()
	target, ok := effect.TargetStatus()
	if !ok {
		return nil
	}
	if !payment.CanTransition(p.Status, target) {
		uc.logger.InfoContext(ctx, "webhook recorded without status change",
			"payment_id", p.ID.String(),
			"status", p.Status.String(),
			"effect", effect.String())
		return nil
	}
	moved, err := tx.Payments().UpdateStatus(ctx, p.ID, target)
	if err != nil {
		return err
	}
	if !moved {
		return nil
	}

	var stepErr error
	switch effect {
	case payment.EffectCapture:
		var res *MarkPaidResult
		res, stepErr = uc.steps.markPaid(ctx, tx, p.ReservationID, &p.ID)
		out.paid = stepErr == nil && !res.AlreadyPaid
	case payment.EffectFail:
		stepErr = uc.steps.cancel(ctx, tx, p.ReservationID, reservation.CancelReasonPaymentFailed)
		out.cancelled = stepErr == nil
	default:
		return nil
	}

	if stepErr == nil {
		return nil
	}
	if !errs.Is(stepErr, errs.ErrConflict) {
		return stepErr
	}

	// A reservation the reaper already cancelled is never resurrected; the money is flagged instead.
	uc.logger.WarnContext(ctx, "payment orphaned",
		"payment_id", p.ID.String(),
		"reservation_id", p.ReservationID.String(),
		"effect", effect.String(),
		"error", stepErr.Error())
	return enqueue(ctx, tx, uc.clock, outbox.KindPayment, outbox.TopicPaymentOrphaned, outbox.PaymentOrphaned{
		PaymentID:       p.ID,
		ReservationID:   p.ReservationID,
		Provider:        provider,
		ProviderEventID: n.EventID,
		Status:          string(target),
		Reason:          stepErr.Error(),
	})
}

func rejected(reason, eventID string) *IngestResult {
	return &IngestResult{Outcome: OutcomeRejected, Reason: reason, EventID: eventID}
}

func normalizeProvider(p string) string {
	return strings.ToLower(strings.TrimSpace(p))
}
