//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"courtside/internal/handler/api"
	resdto "courtside/internal/handler/dto/response"
	"courtside/internal/usecase/queries"
	"courtside/tests/common/httptest"
	queriesmock "courtside/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSlotHandler_ListByCourt(t *testing.T) {
	gin.SetMode(gin.TestMode)
	courtID := uuid.New()
	from := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	to := from.Add(48 * time.Hour)

	setup := func(t *testing.T) (*gin.Engine, *queriesmock.MockSlotQueries) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockSlotQueries(ctrl)
		r := gin.New()
		r.GET("/courts/:id/slots", api.NewSlotHandler(q).ListByCourt)
		return r, q
	}

	t.Run("parses the window and returns slots", func(t *testing.T) {
		r, q := setup(t)
		slotID := uuid.New()
		q.EXPECT().ListAvailable(gomock.Any(), courtID, from, to).Return([]*queries.SlotView{
			{ID: slotID, CourtID: courtID, Start: from, End: from.Add(time.Hour), PriceCents: 4000, Currency: "USD", Status: "held"},
		}, nil)

		url := "/courts/" + courtID.String() + "/slots?from=" + from.Format(time.RFC3339) + "&to=" + to.Format(time.RFC3339)
		rec := httptest.PerformRequest(t, r, http.MethodGet, url, nil, "")

		var resp []resdto.SlotResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &resp)
		if assert.Len(t, resp, 1) {
			assert.Equal(t, slotID, resp[0].ID)
			assert.Equal(t, "held", resp[0].Status)
		}
	})

	t.Run("zero window is left to the query defaults", func(t *testing.T) {
		r, q := setup(t)
		q.EXPECT().ListAvailable(gomock.Any(), courtID, time.Time{}, time.Time{}).Return(nil, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/courts/"+courtID.String()+"/slots", nil, "")
		var resp []resdto.SlotResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &resp)
		assert.Empty(t, resp)
	})

	t.Run("invalid from is a 400", func(t *testing.T) {
		r, _ := setup(t)
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/courts/"+courtID.String()+"/slots?from=yesterday", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid from")
	})
}
