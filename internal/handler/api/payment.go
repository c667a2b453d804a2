package api

import (
	"net/http"

	reqdto "courtside/internal/handler/dto/request"
	resdto "courtside/internal/handler/dto/response"
	"courtside/internal/handler/httperr"
	"courtside/internal/pkg/config"
	"courtside/internal/pkg/errs"
	"courtside/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 1 << 20

var errWebhookRejected = errs.New("webhook rejected")

type PaymentHandler struct {
	cmds            commands.PaymentCommands
	webhooks        commands.WebhookCommands
	providerHeader  string
	signatureHeader string
}

func NewPaymentHandler(cmds commands.PaymentCommands, webhooks commands.WebhookCommands, cfg config.Config) *PaymentHandler {
	return &PaymentHandler{
		cmds:            cmds,
		webhooks:        webhooks,
		providerHeader:  cfg.Webhook.ProviderHeader,
		signatureHeader: cfg.Webhook.SignatureHeader,
	}
}

// @Summary Initiate payment
// @Description Create (or return the existing) payment for an own pending reservation
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.InitiatePaymentRequest true "Payment request"
// @Success 201 {object} resdto.PaymentResponse
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/payments [post]
func (h *PaymentHandler) Initiate(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req reqdto.InitiatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.InitiatePayment(c.Request.Context(), req.ReservationID, actor.UserID)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromInitiatePaymentResult(result))
}

// @Summary Payment provider webhook
// @Description Signed provider notification. Duplicates are acknowledged without effect.
// @Tags payments
// @Accept json
// @Produce json
// @Param X-Payment-Provider header string true "Provider name"
// @Param Stripe-Signature header string false "t=<unix>,v1=<hex hmac>"
// @Success 200 {object} resdto.WebhookResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody)
	body, err := c.GetRawData()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
		return
	}

	result, err := h.webhooks.Ingest(c.Request.Context(), c.GetHeader(h.providerHeader), body, c.GetHeader(h.signatureHeader))
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}

	switch result.Outcome {
	case commands.OutcomeDuplicate:
		c.JSON(http.StatusOK, resdto.WebhookAlreadyProcessed)
	case commands.OutcomeAccepted:
		c.JSON(http.StatusOK, resdto.WebhookProcessed)
	default:
		status := http.StatusBadRequest
		if result.AuthFailure() {
			status = http.StatusUnauthorized
		}
		httperr.AbortWithError(c, status, errs.Wrap(errWebhookRejected, result.Reason), "Webhook rejected", gin.H{"reason": result.Reason})
	}
}
