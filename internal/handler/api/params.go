package api

import (
	"net/http"

	"courtside/internal/handler/httperr"
	"courtside/internal/handler/middleware"
	"courtside/internal/pkg/errs"
	"courtside/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errs.Mark(errs.New("missing authenticated user"), errs.ErrAuthRejected)

// pathID parses the named path parameter as a UUID, answering 400 when it is not one.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func currentActor(c *gin.Context) (commands.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return commands.Actor{}, false
	}
	role, _ := middleware.GetUserRole(c)
	return commands.Actor{UserID: userID, Role: role}, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return false
	}
	return true
}
