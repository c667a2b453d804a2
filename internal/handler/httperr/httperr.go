package httperr

import (
	"log/slog"
	"net/http"

	"courtside/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusFor maps an error category to its HTTP status. Uncategorized errors are 500.
func StatusFor(err error) int {
	switch errs.Category(err) {
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrConflict:
		return http.StatusConflict
	case errs.ErrAuthRejected:
		return http.StatusUnauthorized
	case errs.ErrValidation:
		return http.StatusBadRequest
	case errs.ErrForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Abort answers with the status of err's category. Categorized errors expose
// their message; anything else is logged with its stack and hidden.
func Abort(c *gin.Context, err error, detail any) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 8))
		AbortWithError(c, status, err, "Internal server error", nil)
		return
	}
	AbortWithError(c, status, err, err.Error(), detail)
}
