//go:build unit

package payment_test

import (
	"strconv"
	"testing"
	"time"

	"courtside/internal/domain/payment"

	"github.com/stretchr/testify/assert"
)

func TestVerifier_Verify(t *testing.T) {
	now := time.Unix(1_750_000_000, 0)
	body := []byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)
	v := payment.NewVerifier("whsec_test", 5*time.Minute)
	other := payment.NewVerifier("whsec_other", 5*time.Minute)

	ts := now.Unix()
	good := v.Sign(ts, body)

	cases := []struct {
		name   string
		header string
		body   []byte
		want   payment.VerifyOutcome
	}{
		{name: "valid", header: v.Header(ts, body), body: body, want: payment.VerifyOK},
		{name: "valid among several v1", header: "t=" + strconv.FormatInt(ts, 10) + ",v1=deadbeef,v1=" + good, body: body, want: payment.VerifyOK},
		{name: "unknown scheme ignored", header: "t=" + strconv.FormatInt(ts, 10) + ",v0=abc,v1=" + good, body: body, want: payment.VerifyOK},
		{name: "skew at the limit", header: v.Header(ts-300, body), body: body, want: payment.VerifyOK},
		{name: "future timestamp within tolerance", header: v.Header(ts+120, body), body: body, want: payment.VerifyOK},
		{name: "missing header", header: "", body: body, want: payment.VerifyMissingHeader},
		{name: "no timestamp", header: "v1=" + good, body: body, want: payment.VerifyMalformedHeader},
		{name: "no signature", header: "t=" + strconv.FormatInt(ts, 10), body: body, want: payment.VerifyMalformedHeader},
		{name: "non numeric timestamp", header: "t=yesterday,v1=" + good, body: body, want: payment.VerifyMalformedHeader},
		{name: "element without equals", header: "t=1,garbage", body: body, want: payment.VerifyMalformedHeader},
		{name: "stale timestamp", header: v.Header(ts-301, body), body: body, want: payment.VerifyTimestampSkew},
		{name: "far future timestamp", header: v.Header(ts+301, body), body: body, want: payment.VerifyTimestampSkew},
		{name: "tampered body", header: v.Header(ts, body), body: []byte(`{"id":"evt_1","type":"payment_intent.failed"}`), want: payment.VerifySignatureMismatch},
		{name: "wrong secret", header: other.Header(ts, body), body: body, want: payment.VerifySignatureMismatch},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := v.Verify(c.header, c.body, now)
			assert.Equal(t, c.want, got)
			assert.Equal(t, c.want == payment.VerifyOK, got.OK())
		})
	}
}

func TestNewVerifier_DefaultTolerance(t *testing.T) {
	now := time.Unix(1_750_000_000, 0)
	body := []byte(`{}`)
	v := payment.NewVerifier("s", 0)

	assert.Equal(t, payment.VerifyOK, v.Verify(v.Header(now.Unix()-299, body), body, now))
	assert.Equal(t, payment.VerifyTimestampSkew, v.Verify(v.Header(now.Unix()-600, body), body, now))
}
