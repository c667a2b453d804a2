//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"courtside/internal/domain/outbox"
	"courtside/internal/domain/payment"
	"courtside/internal/domain/reservation"
	"courtside/internal/domain/slot"
	"courtside/internal/usecase/commands"
	"courtside/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "whsec_test"

func newWebhookCommands(f *uowFixture) commands.WebhookCommands {
	return commands.NewWebhookUseCase(f.uow, commands.WebhookSettings{
		Secrets:   map[string]string{"Stripe": testSecret},
		Tolerance: 5 * time.Minute,
	}, f.clock, f.metrics, f.logger)
}

func signed(body []byte) string {
	return payment.NewVerifier(testSecret, 0).Header(fixedNow.Unix(), body)
}

func initiatedPayment(reservationID uuid.UUID) *payment.Payment {
	return payment.NewInitiated(reservationID, "stripe", 4000, "USD")
}

func TestIngest_Rejections(t *testing.T) {
	ctx := context.Background()
	body := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","payment_id":"pay_1"}`)

	cases := []struct {
		name     string
		provider string
		body     []byte
		header   string
		reason   string
		auth     bool
	}{
		{name: "no provider", provider: " ", body: body, reason: commands.ReasonMissingProvider},
		{name: "not json", provider: "stripe", body: []byte(`{`), reason: commands.ReasonMalformedPayload},
		{name: "no event id", provider: "stripe", body: []byte(`{"type":"x"}`), reason: commands.ReasonMissingEventID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newUoWFixture(t)

			got, err := newWebhookCommands(f).Ingest(ctx, tc.provider, tc.body, tc.header)

			require.NoError(t, err)
			assert.Equal(t, commands.OutcomeRejected, got.Outcome)
			assert.Equal(t, tc.reason, got.Reason)
			assert.False(t, got.AuthFailure())
			assert.Equal(t, 1, f.metrics.Webhooks("rejected"))
		})
	}

	sigCases := []struct {
		name   string
		header string
		reason payment.VerifyOutcome
	}{
		{name: "missing header", header: "", reason: payment.VerifyMissingHeader},
		{name: "garbage header", header: "nonsense", reason: payment.VerifyMalformedHeader},
		{name: "wrong signature", header: "t=" + strconv.FormatInt(fixedNow.Unix(), 10) + ",v1=deadbeef", reason: payment.VerifySignatureMismatch},
		{name: "stale timestamp", header: payment.NewVerifier(testSecret, 0).Header(fixedNow.Add(-time.Hour).Unix(), body), reason: payment.VerifyTimestampSkew},
	}
	for _, tc := range sigCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newUoWFixture(t)
			f.reads.EXPECT().PaymentEventExists(ctx, "stripe", "evt_1").Return(false, nil)

			got, err := newWebhookCommands(f).Ingest(ctx, "stripe", body, tc.header)

			require.NoError(t, err)
			assert.Equal(t, commands.OutcomeRejected, got.Outcome)
			assert.Equal(t, string(tc.reason), got.Reason)
			assert.True(t, got.AuthFailure())
		})
	}
}

func TestIngest_DuplicateBeforeVerification(t *testing.T) {
	ctx := context.Background()
	f := newUoWFixture(t)
	body := []byte(`{"event_id":42,"status":"succeeded"}`)

	f.reads.EXPECT().PaymentEventExists(ctx, "stripe", "42").Return(true, nil)

	got, err := newWebhookCommands(f).Ingest(ctx, "stripe", body, "")

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeDuplicate, got.Outcome)
	assert.Equal(t, 1, f.metrics.Webhooks("duplicate"))
}

func TestIngest_DuplicateInsideTransaction(t *testing.T) {
	ctx := context.Background()
	f := newUoWFixture(t)
	body := []byte(`{"id":"evt_race","type":"payment_intent.succeeded","payment_id":"pay_x"}`)

	f.reads.EXPECT().PaymentEventExists(ctx, "stripe", "evt_race").Return(false, nil)
	f.expectTx()
	f.payments.EXPECT().FindByProviderRefForUpdate(ctx, "stripe", "pay_x").Return(nil, notFound())
	f.payments.EXPECT().InsertEvent(ctx, gomock.Any()).Return(uuid.Nil, false, nil)

	got, err := newWebhookCommands(f).Ingest(ctx, "stripe", body, signed(body))

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeDuplicate, got.Outcome)
}

func TestIngest_CaptureMarksReservationPaid(t *testing.T) {
	ctx := context.Background()
	f := newUoWFixture(t)
	s := builder.NewSlotBuilder().WithStatus(slot.StatusHeld).BuildDomain()
	r := builder.NewReservationBuilder().WithSlot(s.ID).BuildDomain()
	p := initiatedPayment(r.ID())
	m := builder.NewMatchBuilder().BuildDomain()
	body := []byte(`{"id":"evt_ok","type":"payment_intent.succeeded","data":{"object":{"id":"` + p.ProviderRef + `"}}}`)

	f.reads.EXPECT().PaymentEventExists(ctx, "stripe", "evt_ok").Return(false, nil)
	f.expectTx()
	f.payments.EXPECT().FindByProviderRefForUpdate(ctx, "stripe", p.ProviderRef).Return(p, nil)
	f.payments.EXPECT().InsertEvent(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev payment.Event) (uuid.UUID, bool, error) {
		assert.True(t, ev.SignatureVerified)
		require.NotNil(t, ev.PaymentID)
		assert.Equal(t, p.ID, *ev.PaymentID)
		assert.Equal(t, "payment_intent.succeeded", ev.EventType)
		return uuid.New(), true, nil
	})
	f.payments.EXPECT().UpdateStatus(ctx, p.ID, payment.StatusCaptured).Return(true, nil)
	f.reservations.EXPECT().GetForUpdate(ctx, r.ID()).Return(r, nil)
	f.reservations.EXPECT().HasOtherPaidForSlot(ctx, s.ID, r.ID()).Return(false, nil)
	f.slots.EXPECT().GetForUpdate(ctx, s.ID).Return(s, nil)
	f.slots.EXPECT().UpdateStatus(ctx, s.ID, slot.StatusHeld, slot.StatusBooked).Return(true, nil)
	f.slots.EXPECT().CourtSport(ctx, s.ID).Return("", nil)
	f.reservations.EXPECT().MarkPaid(ctx, r.ID(), &p.ID).Return(true, nil)
	f.matches.EXPECT().CreateForReservation(ctx, r.ID(), "unknown").Return(m, true, nil)
	f.notifications.EXPECT().CreateJob(ctx, outbox.KindMatch, outbox.TopicMatchCreated, gomock.Any(), fixedNow).Return(nil)

	got, err := newWebhookCommands(f).Ingest(ctx, "stripe", body, signed(body))

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeAccepted, got.Outcome)
	assert.Equal(t, "evt_ok", got.EventID)
	assert.Equal(t, 1, f.metrics.ReservationsPaid())
	assert.Equal(t, 1, f.metrics.Webhooks("accepted"))
}

func TestIngest_CaptureAfterReaperQueuesOrphan(t *testing.T) {
	ctx := context.Background()
	f := newUoWFixture(t)
	r := builder.NewReservationBuilder().WithStatus(reservation.StatusCancelled).BuildDomain()
	p := initiatedPayment(r.ID())
	body := []byte(`{"id":"evt_late","status":"captured","payment_id":"` + p.ProviderRef + `"}`)

	f.reads.EXPECT().PaymentEventExists(ctx, "stripe", "evt_late").Return(false, nil)
	f.expectTx()
	f.payments.EXPECT().FindByProviderRefForUpdate(ctx, "stripe", p.ProviderRef).Return(p, nil)
	f.payments.EXPECT().InsertEvent(ctx, gomock.Any()).Return(uuid.New(), true, nil)
	f.payments.EXPECT().UpdateStatus(ctx, p.ID, payment.StatusCaptured).Return(true, nil)
	f.reservations.EXPECT().GetForUpdate(ctx, r.ID()).Return(r, nil)
	f.notifications.EXPECT().CreateJob(ctx, outbox.KindPayment, outbox.TopicPaymentOrphaned, gomock.Any(), fixedNow).
		DoAndReturn(func(_ context.Context, _, _ string, payload []byte, _ time.Time) error {
			var body outbox.PaymentOrphaned
			require.NoError(t, json.Unmarshal(payload, &body))
			assert.Equal(t, p.ID, body.PaymentID)
			assert.Equal(t, "evt_late", body.ProviderEventID)
			assert.Equal(t, string(payment.StatusCaptured), body.Status)
			return nil
		})

	got, err := newWebhookCommands(f).Ingest(ctx, "stripe", body, signed(body))

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeAccepted, got.Outcome)
	assert.Equal(t, 0, f.metrics.ReservationsPaid())
}

func TestIngest_FailureCancelsReservation(t *testing.T) {
	ctx := context.Background()
	f := newUoWFixture(t)
	r := builder.NewReservationBuilder().OwnCourt(`{"name":"Gym"}`).BuildDomain()
	p := initiatedPayment(r.ID())
	body := []byte(`{"id":"evt_fail","type":"payment_intent.payment_failed","payment_id":"` + p.ProviderRef + `"}`)

	f.reads.EXPECT().PaymentEventExists(ctx, "stripe", "evt_fail").Return(false, nil)
	f.expectTx()
	f.payments.EXPECT().FindByProviderRefForUpdate(ctx, "stripe", p.ProviderRef).Return(p, nil)
	f.payments.EXPECT().InsertEvent(ctx, gomock.Any()).Return(uuid.New(), true, nil)
	f.payments.EXPECT().UpdateStatus(ctx, p.ID, payment.StatusFailed).Return(true, nil)
	f.reservations.EXPECT().GetForUpdate(ctx, r.ID()).Return(r, nil)
	f.reservations.EXPECT().Cancel(ctx, r.ID(), reservation.CancelReasonPaymentFailed).Return(true, nil)

	got, err := newWebhookCommands(f).Ingest(ctx, "stripe", body, signed(body))

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeAccepted, got.Outcome)
	assert.Equal(t, 1, f.metrics.Cancelled(reservation.CancelReasonPaymentFailed))
}

func TestIngest_UnknownPaymentStillRecorded(t *testing.T) {
	ctx := context.Background()
	f := newUoWFixture(t)
	body := []byte(`{"id":"evt_orphan","type":"charge.refunded"}`)

	// no secret for this provider, so no header is needed
	f.reads.EXPECT().PaymentEventExists(ctx, "omise", "evt_orphan").Return(false, nil)
	f.expectTx()
	f.payments.EXPECT().InsertEvent(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev payment.Event) (uuid.UUID, bool, error) {
		assert.False(t, ev.SignatureVerified)
		assert.Nil(t, ev.PaymentID)
		return uuid.New(), true, nil
	})

	got, err := newWebhookCommands(f).Ingest(ctx, "Omise", body, "")

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeAccepted, got.Outcome)
}

func TestIngest_LateEventNeverMovesCapturedPaymentBack(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name  string
		event string
	}{
		{name: "failed after captured", event: "payment_intent.payment_failed"},
		{name: "authorized after captured", event: "authorized"},
		{name: "captured again", event: "payment_intent.succeeded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newUoWFixture(t)
			r := builder.NewReservationBuilder().WithStatus(reservation.StatusPaid).BuildDomain()
			p := initiatedPayment(r.ID())
			p.Status = payment.StatusCaptured
			body := []byte(`{"id":"evt_out_of_order","type":"` + tc.event + `","payment_id":"` + p.ProviderRef + `"}`)

			f.reads.EXPECT().PaymentEventExists(ctx, "stripe", "evt_out_of_order").Return(false, nil)
			f.expectTx()
			f.payments.EXPECT().FindByProviderRefForUpdate(ctx, "stripe", p.ProviderRef).Return(p, nil)
			f.payments.EXPECT().InsertEvent(ctx, gomock.Any()).Return(uuid.New(), true, nil)
			// no status update, no reservation step and no orphan job

			got, err := newWebhookCommands(f).Ingest(ctx, "stripe", body, signed(body))

			require.NoError(t, err)
			assert.Equal(t, commands.OutcomeAccepted, got.Outcome)
			assert.Equal(t, 0, f.metrics.Cancelled(reservation.CancelReasonPaymentFailed))
			assert.Equal(t, 0, f.metrics.ReservationsPaid())
		})
	}
}

func TestIngest_StatusGuardLostRecordsOnly(t *testing.T) {
	ctx := context.Background()
	f := newUoWFixture(t)
	r := builder.NewReservationBuilder().BuildDomain()
	p := initiatedPayment(r.ID())
	body := []byte(`{"id":"evt_guard","type":"payment_intent.payment_failed","payment_id":"` + p.ProviderRef + `"}`)

	f.reads.EXPECT().PaymentEventExists(ctx, "stripe", "evt_guard").Return(false, nil)
	f.expectTx()
	f.payments.EXPECT().FindByProviderRefForUpdate(ctx, "stripe", p.ProviderRef).Return(p, nil)
	f.payments.EXPECT().InsertEvent(ctx, gomock.Any()).Return(uuid.New(), true, nil)
	f.payments.EXPECT().UpdateStatus(ctx, p.ID, payment.StatusFailed).Return(false, nil)

	got, err := newWebhookCommands(f).Ingest(ctx, "stripe", body, signed(body))

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeAccepted, got.Outcome)
	assert.Equal(t, 0, f.metrics.Cancelled(reservation.CancelReasonPaymentFailed))
}
