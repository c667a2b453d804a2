package api

import (
	"net/http"
	"time"

	resdto "courtside/internal/handler/dto/response"
	"courtside/internal/handler/httperr"
	"courtside/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	q queries.SlotQueries
}

func NewSlotHandler(q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{q: q}
}

// @Summary List court availability
// @Description Open and held slots of a court, ordered by start
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Param from query string false "RFC3339 lower bound (default now)"
// @Param to query string false "RFC3339 upper bound (default from + 7 days)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Router /api/courts/{id}/slots [get]
func (h *SlotHandler) ListByCourt(c *gin.Context) {
	courtID, ok := pathID(c, "id")
	if !ok {
		return
	}
	from, ok := queryTime(c, "from")
	if !ok {
		return
	}
	to, ok := queryTime(c, "to")
	if !ok {
		return
	}

	views, err := h.q.ListAvailable(c.Request.Context(), courtID, from, to)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

func queryTime(c *gin.Context, name string) (time.Time, bool) {
	v := c.Query(name)
	if v == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return time.Time{}, false
	}
	return t, true
}
