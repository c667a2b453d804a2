//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"courtside/internal/domain/payment"
	"courtside/internal/domain/user"
	"courtside/internal/handler/api"
	resdto "courtside/internal/handler/dto/response"
	"courtside/internal/pkg/config"
	"courtside/internal/usecase/commands"
	"courtside/tests/common/httptest"
	commandsmock "courtside/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockPayments *commandsmock.MockPaymentCommands
	mockWebhooks *commandsmock.MockWebhookCommands
	userID       uuid.UUID
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPayments = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockWebhooks = commandsmock.NewMockWebhookCommands(s.mockCtrl)
	h := api.NewPaymentHandler(s.mockPayments, s.mockWebhooks, config.NewTestConfig())

	s.userID = uuid.New()
	s.router.POST("/payments", fakeAuth(s.userID, user.RoleOrganizer), h.Initiate)
	s.router.POST("/payments/webhook", h.Webhook)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestInitiate() {
	reservationID := uuid.New()
	p := payment.NewInitiated(reservationID, "stripe", 4000, "USD")

	s.Run("success: 201 when a payment is created", func() {
		s.mockPayments.EXPECT().InitiatePayment(gomock.Any(), reservationID, s.userID).
			Return(&commands.InitiatePaymentResult{Payment: p, CheckoutURL: "/payments/" + p.ID.String() + "/checkout", Created: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments", map[string]any{"reservation_id": reservationID}, "token")
		var resp resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(p.ID, resp.ID)
		s.Equal(reservationID, resp.ReservationID)
		s.Equal(int32(4000), resp.AmountCents)
		s.Equal("initiated", resp.Status)
		s.Equal(p.ProviderRef, resp.ProviderRef)
		s.Contains(resp.CheckoutURL, p.ID.String())
	})

	s.Run("success: 200 when the payment already existed", func() {
		s.mockPayments.EXPECT().InitiatePayment(gomock.Any(), reservationID, s.userID).
			Return(&commands.InitiatePaymentResult{Payment: p}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments", map[string]any{"reservation_id": reservationID}, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 without reservation_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments", map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 409 for a cancelled reservation", func() {
		s.mockPayments.EXPECT().InitiatePayment(gomock.Any(), reservationID, s.userID).
			Return(nil, commands.ErrReservationConflict)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments", map[string]any{"reservation_id": reservationID}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "reservation state conflict")
	})
}

func (s *PaymentHandlerTestSuite) TestWebhook() {
	raw := []byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)
	headers := map[string]string{"X-Payment-Provider": "stripe", "Stripe-Signature": "t=1,v1=ab"}

	s.Run("passes raw body and headers through; 200 processed", func() {
		s.mockWebhooks.EXPECT().Ingest(gomock.Any(), "stripe", raw, "t=1,v1=ab").
			Return(&commands.IngestResult{Outcome: commands.OutcomeAccepted, EventID: "evt_1"}, nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/payments/webhook", raw, headers)
		var resp resdto.WebhookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("processed", resp.Status)
	})

	s.Run("duplicate: 200 already_processed", func() {
		s.mockWebhooks.EXPECT().Ingest(gomock.Any(), "stripe", raw, gomock.Any()).
			Return(&commands.IngestResult{Outcome: commands.OutcomeDuplicate, EventID: "evt_1"}, nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/payments/webhook", raw, headers)
		var resp resdto.WebhookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("already_processed", resp.Status)
	})

	s.Run("rejections map to 401 or 400 with the reason", func() {
		testCases := []struct {
			reason         string
			expectedStatus int
		}{
			{reason: string(payment.VerifySignatureMismatch), expectedStatus: http.StatusUnauthorized},
			{reason: string(payment.VerifyMissingHeader), expectedStatus: http.StatusUnauthorized},
			{reason: string(payment.VerifyTimestampSkew), expectedStatus: http.StatusUnauthorized},
			{reason: commands.ReasonMalformedPayload, expectedStatus: http.StatusBadRequest},
			{reason: commands.ReasonMissingProvider, expectedStatus: http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.reason, func() {
				s.mockWebhooks.EXPECT().Ingest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&commands.IngestResult{Outcome: commands.OutcomeRejected, Reason: tc.reason}, nil)

				rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/payments/webhook", raw, headers)
				body := httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "Webhook rejected")
				s.Equal(tc.reason, body.Detail["reason"])
			})
		}
	})

	s.Run("error: categorized usecase error keeps its status", func() {
		s.mockWebhooks.EXPECT().Ingest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrReservationNotFound)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/payments/webhook", raw, headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
	})
}
