//go:build e2e

package booking_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"courtside/internal/domain/payment"
	"courtside/internal/domain/user"
	resdto "courtside/internal/handler/dto/response"
	"courtside/tests/common/dbtest"
	"courtside/tests/common/httptest"
	"courtside/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	paymentsURL     = "/api/payments"
	webhookURL      = "/api/payments/webhook"
	markPaidURL     = "/api/admin/reservations/%s/mark-paid"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) newSlot() uuid.UUID {
	t := s.T()
	courtID := dbtest.CreateTestCourt(t, s.DB, "Court 1", "padel")
	start := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)
	return dbtest.CreateTestSlot(t, s.DB, courtID, start, 4000)
}

func (s *BookingSuite) hold(token string, slotID uuid.UUID) resdto.HoldResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
		map[string]any{"slot_id": slotID, "actor_type": "individual"}, token)
	var hold resdto.HoldResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &hold)
	return hold
}

func (s *BookingSuite) initiatePayment(token string, reservationID uuid.UUID) resdto.PaymentResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL,
		map[string]any{"reservation_id": reservationID}, token)
	var p resdto.PaymentResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &p)
	return p
}

// signedWebhook builds a provider callback signed with the configured test secret.
func (s *BookingSuite) signedWebhook(eventID, eventType, providerRef string) ([]byte, map[string]string) {
	body, err := json.Marshal(map[string]any{
		"id":   eventID,
		"type": eventType,
		"data": map[string]any{"object": map[string]any{"id": providerRef}},
	})
	require.NoError(s.T(), err)
	verifier := payment.NewVerifier(s.Config.Webhook.Secrets["stripe"], s.Config.Webhook.Tolerance)
	return body, map[string]string{
		s.Config.Webhook.ProviderHeader:  "stripe",
		s.Config.Webhook.SignatureHeader: verifier.Header(time.Now().Unix(), body),
	}
}

// =============================================================================
// Holds
// =============================================================================

func (s *BookingSuite) TestHold() {
	s.Run("hold moves the slot to held and lists under the booker", func() {
		t := s.T()
		slotID := s.newSlot()
		userID, token := s.JWT.NewUser(t, user.RoleOrganizer)

		hold := s.hold(token, slotID)
		require.Equal(t, "pending", hold.Status)
		require.WithinDuration(t, time.Now().Add(s.Config.Booking.HoldTTL), hold.ExpiresAt, time.Minute)
		require.Equal(t, "held", dbtest.SlotStatus(t, s.DB, slotID))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, token)
		var list resdto.ReservationListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list.Items, 1)
		require.Equal(t, userID, list.Items[0].BookedByUserID)
		require.NotNil(t, list.Items[0].Slot)
		require.Equal(t, int32(4000), list.Items[0].Slot.PriceCents)
	})

	s.Run("concurrent holds on one slot admit exactly one", func() {
		t := s.T()
		slotID := s.newSlot()
		const n = 12

		var wg sync.WaitGroup
		codes := make([]int, n)
		for i := range n {
			_, token := s.JWT.NewUser(t, user.RoleOrganizer)
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
					map[string]any{"slot_id": slotID, "actor_type": "individual"}, token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		created, conflicts := 0, 0
		for _, c := range codes {
			switch c {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		require.Equal(t, 1, created, "codes: %v", codes)
		require.Equal(t, n-1, conflicts, "codes: %v", codes)
		require.Equal(t, 1, dbtest.Count(t, s.DB, "SELECT count(*) FROM reservations WHERE slot_id = $1", slotID))
	})

	s.Run("owner cancel releases the slot for the next booker", func() {
		t := s.T()
		slotID := s.newSlot()
		_, token := s.JWT.NewUser(t, user.RoleOrganizer)
		hold := s.hold(token, slotID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL+"/"+hold.ReservationID.String()+"/cancel", nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)
		require.Equal(t, "open", dbtest.SlotStatus(t, s.DB, slotID))

		_, other := s.JWT.NewUser(t, user.RoleOrganizer)
		s.hold(other, slotID)
	})

	s.Run("other users cannot see a reservation", func() {
		t := s.T()
		_, token := s.JWT.NewUser(t, user.RoleOrganizer)
		hold := s.hold(token, s.newSlot())

		_, stranger := s.JWT.NewUser(t, user.RoleOrganizer)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+hold.ReservationID.String(), nil, stranger)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}

// =============================================================================
// Webhooks
// =============================================================================

func (s *BookingSuite) TestWebhook() {
	s.Run("capture marks paid, books the slot and creates a match", func() {
		t := s.T()
		slotID := s.newSlot()
		_, token := s.JWT.NewUser(t, user.RoleOrganizer)
		hold := s.hold(token, slotID)
		p := s.initiatePayment(token, hold.ReservationID)
		require.Equal(t, int32(4000), p.AmountCents)

		body, headers := s.signedWebhook("evt_capture_1", "payment_intent.succeeded", p.ProviderRef)
		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, body, headers)
		var resp resdto.WebhookResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Equal(t, "processed", resp.Status)

		require.Equal(t, "paid", dbtest.ReservationStatus(t, s.DB, hold.ReservationID))
		require.Equal(t, "booked", dbtest.SlotStatus(t, s.DB, slotID))
		require.Equal(t, 1, dbtest.Count(t, s.DB, "SELECT count(*) FROM matches WHERE reservation_id = $1", hold.ReservationID))
		require.Equal(t, 1, dbtest.Count(t, s.DB, "SELECT count(*) FROM notification_jobs WHERE topic = 'match.created'"))
	})

	s.Run("replayed event is acknowledged once and applied once", func() {
		t := s.T()
		_, token := s.JWT.NewUser(t, user.RoleOrganizer)
		hold := s.hold(token, s.newSlot())
		p := s.initiatePayment(token, hold.ReservationID)
		body, headers := s.signedWebhook("evt_dup_1", "payment_intent.succeeded", p.ProviderRef)

		first := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, body, headers)
		require.Equal(t, http.StatusOK, first.Code)
		second := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, body, headers)
		var resp resdto.WebhookResponse
		httptest.AssertSuccessResponse(t, second, http.StatusOK, &resp)
		require.Equal(t, "already_processed", resp.Status)

		require.Equal(t, 1, dbtest.Count(t, s.DB, "SELECT count(*) FROM payment_events WHERE provider_event_id = 'evt_dup_1'"))
		require.Equal(t, 1, dbtest.Count(t, s.DB, "SELECT count(*) FROM matches WHERE reservation_id = $1", hold.ReservationID))
	})

	s.Run("concurrent deliveries of one event store a single row", func() {
		t := s.T()
		_, token := s.JWT.NewUser(t, user.RoleOrganizer)
		hold := s.hold(token, s.newSlot())
		p := s.initiatePayment(token, hold.ReservationID)
		body, headers := s.signedWebhook("evt_race_1", "payment_intent.succeeded", p.ProviderRef)

		const n = 8
		var wg sync.WaitGroup
		codes := make([]int, n)
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				codes[i] = httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, body, headers).Code
			}()
		}
		wg.Wait()

		for _, c := range codes {
			require.Equal(t, http.StatusOK, c, "codes: %v", codes)
		}
		require.Equal(t, 1, dbtest.Count(t, s.DB, "SELECT count(*) FROM payment_events WHERE provider_event_id = 'evt_race_1'"))
		require.Equal(t, "paid", dbtest.ReservationStatus(t, s.DB, hold.ReservationID))
	})

	s.Run("concurrent captures with distinct event ids pay the hold once", func() {
		t := s.T()
		slotID := s.newSlot()
		_, token := s.JWT.NewUser(t, user.RoleOrganizer)
		hold := s.hold(token, slotID)
		p := s.initiatePayment(token, hold.ReservationID)

		const n = 8
		var wg sync.WaitGroup
		codes := make([]int, n)
		for i := range n {
			body, headers := s.signedWebhook(fmt.Sprintf("evt_capture_%d", i), "payment_intent.succeeded", p.ProviderRef)
			wg.Add(1)
			go func() {
				defer wg.Done()
				codes[i] = httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, body, headers).Code
			}()
		}
		wg.Wait()

		for _, c := range codes {
			require.Equal(t, http.StatusOK, c, "codes: %v", codes)
		}
		require.Equal(t, n, dbtest.Count(t, s.DB, "SELECT count(*) FROM payment_events WHERE payment_id = $1", p.ID))
		require.Equal(t, 1, dbtest.Count(t, s.DB, "SELECT count(*) FROM reservations WHERE slot_id = $1 AND status = 'paid'", slotID))
		require.Equal(t, 1, dbtest.Count(t, s.DB, "SELECT count(*) FROM matches WHERE reservation_id = $1", hold.ReservationID))
		require.Equal(t, 1, dbtest.Count(t, s.DB, "SELECT count(*) FROM notification_jobs WHERE topic = 'match.created'"))
		require.Equal(t, 0, dbtest.Count(t, s.DB, "SELECT count(*) FROM notification_jobs WHERE topic = 'payment.orphaned'"))
		require.Equal(t, "booked", dbtest.SlotStatus(t, s.DB, slotID))
	})

	s.Run("late failure after capture leaves the payment captured", func() {
		t := s.T()
		slotID := s.newSlot()
		_, token := s.JWT.NewUser(t, user.RoleOrganizer)
		hold := s.hold(token, slotID)
		p := s.initiatePayment(token, hold.ReservationID)

		body, headers := s.signedWebhook("evt_ok_first", "payment_intent.succeeded", p.ProviderRef)
		require.Equal(t, http.StatusOK, httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, body, headers).Code)
		body, headers = s.signedWebhook("evt_fail_late", "payment_intent.payment_failed", p.ProviderRef)
		require.Equal(t, http.StatusOK, httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, body, headers).Code)

		require.Equal(t, 1, dbtest.Count(t, s.DB, "SELECT count(*) FROM payments WHERE id = $1 AND status = 'captured'", p.ID))
		require.Equal(t, "paid", dbtest.ReservationStatus(t, s.DB, hold.ReservationID))
		require.Equal(t, "booked", dbtest.SlotStatus(t, s.DB, slotID))
		require.Equal(t, 0, dbtest.Count(t, s.DB, "SELECT count(*) FROM notification_jobs WHERE topic = 'payment.orphaned'"))
	})

	s.Run("bad signature is rejected and stores nothing", func() {
		t := s.T()
		body, headers := s.signedWebhook("evt_forged", "payment_intent.succeeded", "ref")
		headers[s.Config.Webhook.SignatureHeader] = "t=" + strconv.FormatInt(time.Now().Unix(), 10) + ",v1=deadbeef"

		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, body, headers)
		errBody := httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Webhook rejected")
		require.Equal(t, string(payment.VerifySignatureMismatch), errBody.Detail["reason"])
		require.Equal(t, 0, dbtest.Count(t, s.DB, "SELECT count(*) FROM payment_events"))
	})

	s.Run("failed payment cancels the hold and frees the slot", func() {
		t := s.T()
		slotID := s.newSlot()
		_, token := s.JWT.NewUser(t, user.RoleOrganizer)
		hold := s.hold(token, slotID)
		p := s.initiatePayment(token, hold.ReservationID)

		body, headers := s.signedWebhook("evt_fail_1", "payment_intent.payment_failed", p.ProviderRef)
		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, body, headers)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "cancelled", dbtest.ReservationStatus(t, s.DB, hold.ReservationID))
		require.Equal(t, "open", dbtest.SlotStatus(t, s.DB, slotID))
	})
}

// =============================================================================
// Reaper
// =============================================================================

func (s *BookingSuite) TestReaper() {
	s.Run("expired hold is cancelled and a late mark-paid conflicts", func() {
		t := s.T()
		slotID := s.newSlot()
		_, token := s.JWT.NewUser(t, user.RoleOrganizer)
		hold := s.hold(token, slotID)
		dbtest.ExpireHold(t, s.DB, hold.ReservationID)

		result, err := s.Reaper.Sweep(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, result.Expired)
		require.Equal(t, "cancelled", dbtest.ReservationStatus(t, s.DB, hold.ReservationID))
		require.Equal(t, "open", dbtest.SlotStatus(t, s.DB, slotID))

		_, admin := s.JWT.NewUser(t, user.RoleSuperAdmin)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(markPaidURL, hold.ReservationID), nil, admin)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
		require.Equal(t, "cancelled", dbtest.ReservationStatus(t, s.DB, hold.ReservationID))
	})

	s.Run("capture after expiry leaves the reservation cancelled and flags the payment", func() {
		t := s.T()
		_, token := s.JWT.NewUser(t, user.RoleOrganizer)
		hold := s.hold(token, s.newSlot())
		p := s.initiatePayment(token, hold.ReservationID)
		dbtest.ExpireHold(t, s.DB, hold.ReservationID)
		_, err := s.Reaper.Sweep(context.Background())
		require.NoError(t, err)

		body, headers := s.signedWebhook("evt_late_1", "payment_intent.succeeded", p.ProviderRef)
		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, body, headers)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "cancelled", dbtest.ReservationStatus(t, s.DB, hold.ReservationID))
		require.Equal(t, 1, dbtest.Count(t, s.DB, "SELECT count(*) FROM notification_jobs WHERE topic = 'payment.orphaned'"))
	})

	s.Run("concurrent admin mark-paid calls pay the hold once", func() {
		t := s.T()
		slotID := s.newSlot()
		_, token := s.JWT.NewUser(t, user.RoleOrganizer)
		hold := s.hold(token, slotID)
		_, admin := s.JWT.NewUser(t, user.RoleSuperAdmin)

		const n = 8
		var wg sync.WaitGroup
		results := make([]resdto.MarkPaidResponse, n)
		codes := make([]int, n)
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(markPaidURL, hold.ReservationID), nil, admin)
				codes[i] = w.Code
				_ = json.Unmarshal(w.Body.Bytes(), &results[i])
			}()
		}
		wg.Wait()

		fresh := 0
		for i, c := range codes {
			require.Equal(t, http.StatusOK, c, "codes: %v", codes)
			if !results[i].AlreadyPaid {
				fresh++
			}
		}
		require.Equal(t, 1, fresh, "exactly one call performs the transition")
		require.Equal(t, 1, dbtest.Count(t, s.DB, "SELECT count(*) FROM reservations WHERE slot_id = $1 AND status = 'paid'", slotID))
		require.Equal(t, 1, dbtest.Count(t, s.DB, "SELECT count(*) FROM matches WHERE reservation_id = $1", hold.ReservationID))
		require.Equal(t, 1, dbtest.Count(t, s.DB, "SELECT count(*) FROM notification_jobs WHERE topic = 'match.created'"))
		require.Equal(t, "booked", dbtest.SlotStatus(t, s.DB, slotID))
	})

	s.Run("mark-paid requires super admin", func() {
		t := s.T()
		_, token := s.JWT.NewUser(t, user.RoleOrganizer)
		hold := s.hold(token, s.newSlot())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(markPaidURL, hold.ReservationID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})
}
