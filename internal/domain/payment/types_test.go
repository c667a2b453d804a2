//go:build unit

package payment_test

import (
	"testing"

	"courtside/internal/domain/payment"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	all := []payment.Status{
		payment.StatusInitiated, payment.StatusAuthorized, payment.StatusCaptured,
		payment.StatusFailed, payment.StatusRefunded,
	}
	allowed := map[[2]payment.Status]bool{
		{payment.StatusInitiated, payment.StatusAuthorized}: true,
		{payment.StatusInitiated, payment.StatusCaptured}:   true,
		{payment.StatusInitiated, payment.StatusFailed}:     true,
		{payment.StatusAuthorized, payment.StatusCaptured}:  true,
		{payment.StatusAuthorized, payment.StatusFailed}:    true,
		{payment.StatusFailed, payment.StatusCaptured}:      true,
		{payment.StatusCaptured, payment.StatusRefunded}:    true,
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]payment.Status{from, to}]
			assert.Equal(t, want, payment.CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestSourcesOf(t *testing.T) {
	assert.ElementsMatch(t,
		[]payment.Status{payment.StatusInitiated, payment.StatusAuthorized},
		payment.SourcesOf(payment.StatusFailed))
	assert.ElementsMatch(t,
		[]payment.Status{payment.StatusInitiated, payment.StatusAuthorized, payment.StatusFailed},
		payment.SourcesOf(payment.StatusCaptured))
	assert.Empty(t, payment.SourcesOf(payment.StatusInitiated))
}
