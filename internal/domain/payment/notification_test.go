//go:build unit

package payment_test

import (
	"strings"
	"testing"

	"courtside/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNotification(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		want  payment.Notification
		errIs error
	}{
		{
			name: "stripe style event",
			raw:  `{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pay_abc"}}}`,
			want: payment.Notification{EventID: "evt_1", StatusToken: "payment_intent.succeeded", PaymentRef: "pay_abc"},
		},
		{
			name: "flat event with status",
			raw:  `{"event_id":"42","status":"FAILED","payment_id":"pay_x"}`,
			want: payment.Notification{EventID: "42", StatusToken: "failed", PaymentRef: "pay_x"},
		},
		{
			name: "numeric event id",
			raw:  `{"event_id":1001,"status":"captured"}`,
			want: payment.Notification{EventID: "1001", StatusToken: "captured"},
		},
		{
			name: "payment_id wins over data.object.id",
			raw:  `{"id":"evt_2","payment_id":"pay_top","data":{"object":{"id":"pay_nested"}}}`,
			want: payment.Notification{EventID: "evt_2", PaymentRef: "pay_top"},
		},
		{name: "missing id", raw: `{"type":"payment_intent.succeeded"}`, errIs: payment.ErrMissingEventID},
		{name: "blank id", raw: `{"id":"  "}`, errIs: payment.ErrMissingEventID},
		{name: "not json", raw: `id=evt_1`, errIs: payment.ErrMalformedPayload},
		{name: "json array", raw: `[1,2]`, errIs: payment.ErrMalformedPayload},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := payment.ParseNotification([]byte(c.raw))
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestEffectFromToken(t *testing.T) {
	cases := map[string]payment.Effect{
		"payment_intent.succeeded":      payment.EffectCapture,
		"charge.captured":               payment.EffectCapture,
		"succeeded":                     payment.EffectCapture,
		"payment_intent.payment_failed": payment.EffectFail,
		"failed":                        payment.EffectFail,
		"authorized":                    payment.EffectAuthorize,
		"payment_intent.created":        payment.EffectNone,
		"":                              payment.EffectNone,
	}
	for token, want := range cases {
		assert.Equal(t, want, payment.EffectFromToken(token), token)
	}

	st, ok := payment.EffectCapture.TargetStatus()
	assert.True(t, ok)
	assert.Equal(t, payment.StatusCaptured, st)
	_, ok = payment.EffectNone.TargetStatus()
	assert.False(t, ok)
}

func TestNewInitiated(t *testing.T) {
	resID := uuid.New()
	p := payment.NewInitiated(resID, "stripe", 2500, "USD")

	assert.Equal(t, payment.StatusInitiated, p.Status)
	assert.True(t, strings.HasPrefix(p.ProviderRef, "pay_"))
	assert.Len(t, p.ProviderRef, len("pay_")+32)
	assert.Equal(t, payment.ProviderRefFor(p.ID), p.ProviderRef)
	assert.Equal(t, "/payments/"+p.ID.String()+"/checkout", payment.CheckoutURL(p.ID))
}
