package api

import (
	"context"
	"net/http"

	"courtside/internal/domain/match"
	reqdto "courtside/internal/handler/dto/request"
	resdto "courtside/internal/handler/dto/response"
	"courtside/internal/handler/httperr"
	"courtside/internal/pkg/errs"
	"courtside/internal/usecase/commands"
	"courtside/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MatchHandler struct {
	cmds commands.MatchCommands
	q    queries.MatchQueries
}

func NewMatchHandler(cmds commands.MatchCommands, q queries.MatchQueries) *MatchHandler {
	return &MatchHandler{cmds: cmds, q: q}
}

// @Summary Get match
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Success 200 {object} resdto.MatchResponse
// @Failure 404 {object} httperr.Response
// @Router /api/matches/{id} [get]
func (h *MatchHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMatchView(view))
}

// @Summary Offer referee assignment
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Param request body reqdto.OfferRefereeRequest true "Referee to offer"
// @Success 201 {object} resdto.AssignmentResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/matches/{id}/referee/offer [post]
func (h *MatchHandler) OfferReferee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req reqdto.OfferRefereeRequest
	if !bindJSON(c, &req) {
		return
	}

	offer, err := h.cmds.OfferReferee(c.Request.Context(), id, req.RefereeUserID, actor)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAssignment(offer))
}

// @Summary Accept referee assignment
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Success 200 {object} resdto.AssignmentResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/matches/{id}/referee/accept [post]
func (h *MatchHandler) AcceptReferee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	accepted, err := h.cmds.AcceptAssignment(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAssignment(accepted))
}

// @Summary Start match
// @Description SCHEDULED to LIVE, appends KICKOFF
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/matches/{id}/start [post]
func (h *MatchHandler) Start(c *gin.Context) {
	h.lifecycle(c, h.cmds.StartMatch)
}

// @Summary Finalize match
// @Description LIVE to FINAL, appends FINAL_WHISTLE and queues the report job
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/matches/{id}/finalize [post]
func (h *MatchHandler) Finalize(c *gin.Context) {
	h.lifecycle(c, h.cmds.FinalizeMatch)
}

func (h *MatchHandler) lifecycle(c *gin.Context, transition func(ctx context.Context, matchID uuid.UUID, actor commands.Actor) (*match.Event, error)) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	ev, err := transition(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEvent(ev))
}

// @Summary Append match event
// @Description seq must be exactly one past the current last event
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Param request body reqdto.AppendEventRequest true "Event"
// @Success 201 {object} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/matches/{id}/events [post]
func (h *MatchHandler) AppendEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req reqdto.AppendEventRequest
	if !bindJSON(c, &req) {
		return
	}

	ev, err := h.cmds.Append(c.Request.Context(), req.ToParams(id, actor))
	if err != nil {
		var ooo *match.OutOfOrderError
		if errs.As(err, &ooo) {
			httperr.Abort(c, err, gin.H{"expected_seq": ooo.Expected, "got_seq": ooo.Got})
			return
		}
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromEvent(ev))
}

// @Summary List match events
// @Description Ordered by seq
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Success 200 {array} resdto.EventResponse
// @Failure 404 {object} httperr.Response
// @Router /api/matches/{id}/events [get]
func (h *MatchHandler) ListEvents(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ListEvents(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventViews(views))
}

// @Summary Match snapshot
// @Description Ordered event log of a FINAL match with its SHA-256 checksum
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Success 200 {object} resdto.SnapshotResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/matches/{id}/snapshot [get]
func (h *MatchHandler) Snapshot(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	snap, err := h.q.Snapshot(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshotView(snap))
}

// @Summary Decide match award
// @Description One award per kind on a FINAL match
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Param request body reqdto.DecideAwardRequest true "Award"
// @Success 201 {object} resdto.AwardResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/matches/{id}/awards [post]
func (h *MatchHandler) DecideAward(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req reqdto.DecideAwardRequest
	if !bindJSON(c, &req) {
		return
	}

	award, err := h.cmds.DecideAward(c.Request.Context(), req.ToParams(id, actor))
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAward(award))
}

// @Summary List match awards
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Success 200 {array} resdto.AwardResponse
// @Failure 404 {object} httperr.Response
// @Router /api/matches/{id}/awards [get]
func (h *MatchHandler) ListAwards(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ListAwards(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAwardViews(views))
}
