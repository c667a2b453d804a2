package api

import (
	"net/http"
	"strconv"

	reqdto "courtside/internal/handler/dto/request"
	resdto "courtside/internal/handler/dto/response"
	"courtside/internal/handler/httperr"
	"courtside/internal/usecase/commands"
	"courtside/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create hold
// @Description Place a pending reservation on a slot, or on the booker's own court
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Hold request"
// @Success 201 {object} resdto.HoldResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.CreateHold(c.Request.Context(), req.ToInput(actor.UserID))
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.Header("Location", "/api/reservations/"+result.ReservationID.String())
	c.JSON(http.StatusCreated, resdto.FromHoldResult(result))
}

// @Summary List my reservations
// @Description Newest first, keyset paginated
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	limit := 0
	if v := c.Query("limit"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = iv
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	views, next, err := h.q.ListMine(c.Request.Context(), actor.UserID, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(views, next))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor.UserID, actor.Role, id)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Cancel reservation
// @Description Cancel an own pending reservation and release its slot
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := h.cmds.CancelByOwner(c.Request.Context(), id, actor.UserID, actor.Role); err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Mark reservation paid
// @Description Operator override of the payment webhook
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.MarkPaidRequest false "Optional payment reference"
// @Success 200 {object} resdto.MarkPaidResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/reservations/{id}/mark-paid [post]
func (h *ReservationHandler) MarkPaid(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.MarkPaidRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.MarkPaid(c.Request.Context(), id, req.PaymentID)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMarkPaidResult(result))
}
