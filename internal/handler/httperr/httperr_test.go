//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"courtside/internal/handler/httperr"
	"courtside/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.Mark(errs.New("x"), errs.ErrNotFound), http.StatusNotFound},
		{"conflict", errs.Mark(errs.New("x"), errs.ErrConflict), http.StatusConflict},
		{"auth", errs.Mark(errs.New("x"), errs.ErrAuthRejected), http.StatusUnauthorized},
		{"validation", errs.Mark(errs.New("x"), errs.ErrValidation), http.StatusBadRequest},
		{"forbidden", errs.Mark(errs.New("x"), errs.ErrForbidden), http.StatusForbidden},
		{"wrapped conflict", errs.Wrap(errs.Mark(errs.New("x"), errs.ErrConflict), "outer"), http.StatusConflict},
		{"uncategorized", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusFor(tt.err))
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(err error, detail any) (*httptest.ResponseRecorder, httperr.Response) {
		r := gin.New()
		r.GET("/", func(c *gin.Context) { httperr.Abort(c, err, detail) })
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		var body httperr.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return rec, body
	}

	t.Run("categorized error exposes its message and detail", func(t *testing.T) {
		rec, body := run(errs.Mark(errs.New("slot is not available"), errs.ErrConflict), gin.H{"slot": "a"})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "slot is not available", body.Error.Message)
		assert.Equal(t, map[string]any{"slot": "a"}, body.Detail)
	})

	t.Run("internal error is hidden", func(t *testing.T) {
		rec, body := run(errors.New("pq: password authentication failed"), gin.H{"leak": true})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", body.Error.Message)
		assert.Nil(t, body.Detail)
	})
}
