//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"courtside/internal/domain/user"
	"courtside/internal/handler/middleware"
	"courtside/internal/usecase"
	"courtside/tests/common/httptest"
	usecasemock "courtside/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T, roles ...user.Role) (*gin.Engine, *usecasemock.MockTokenValidator) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	auth := middleware.NewAuthMiddleware(validator)

	r := gin.New()
	handlers := []gin.HandlerFunc{auth.RequireAuth()}
	if len(roles) > 0 {
		handlers = append(handlers, auth.RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "role": string(role)})
	})
	r.GET("/me", handlers...)
	return r, validator
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()

	t.Run("valid bearer token sets the user", func(t *testing.T) {
		r, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("good").Return(userID, user.RoleOrganizer, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "good")
		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Equal(t, "organizer", body["role"])
	})

	t.Run("missing header is 401", func(t *testing.T) {
		r, _ := newAuthRouter(t)
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("non-bearer scheme is 401", func(t *testing.T) {
		r, _ := newAuthRouter(t)
		rec := httptest.PerformRawRequest(t, r, http.MethodGet, "/me", nil, map[string]string{"Authorization": "Basic Zm9vOmJhcg=="})
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("rejected token is 401", func(t *testing.T) {
		r, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("expired").Return(uuid.Nil, user.Role(""), usecase.ErrTokenRejected)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "expired")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       user.Role
		expectCode int
	}{
		{name: "allowed role passes", role: user.RoleSuperAdmin, expectCode: http.StatusOK},
		{name: "second allowed role passes", role: user.RoleOrganizer, expectCode: http.StatusOK},
		{name: "other role is forbidden", role: user.RoleCommentator, expectCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, validator := newAuthRouter(t, user.RoleSuperAdmin, user.RoleOrganizer)
			validator.EXPECT().ValidateToken("tok").Return(uuid.New(), tt.role, nil)

			rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "tok")
			if tt.expectCode == http.StatusOK {
				httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
				return
			}
			httptest.AssertErrorResponse(t, rec, tt.expectCode, "Insufficient permissions")
		})
	}
}
