//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"courtside/internal/domain/user"
	"courtside/internal/pkg/errs"
	"courtside/internal/pkg/jwt"
	"courtside/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	issuer := usecase.NewTokenIssuer(svc)
	validator := usecase.NewTokenValidator(svc)

	userID := uuid.New()
	token, err := issuer.IssueToken(userID, user.RoleReferee)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		gotID, gotRole, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, gotID)
		assert.Equal(t, user.RoleReferee, gotRole)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, _, err := validator.ValidateToken("not-a-jwt")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrAuthRejected))
	})

	t.Run("other secret", func(t *testing.T) {
		foreign, err := usecase.NewTokenIssuer(jwt.NewService("other", time.Hour)).IssueToken(userID, user.RoleOrganizer)
		require.NoError(t, err)
		_, _, err = validator.ValidateToken(foreign)
		assert.True(t, errs.Is(err, errs.ErrAuthRejected))
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := usecase.NewTokenIssuer(jwt.NewService("test-secret", -time.Minute)).IssueToken(userID, user.RoleOrganizer)
		require.NoError(t, err)
		_, _, err = validator.ValidateToken(expired)
		assert.True(t, errs.Is(err, errs.ErrAuthRejected))
	})

	t.Run("unknown role claim", func(t *testing.T) {
		signed, err := svc.Sign(userID, user.Role("janitor"))
		require.NoError(t, err)
		_, _, err = validator.ValidateToken(signed)
		assert.True(t, errs.Is(err, errs.ErrAuthRejected))
		assert.True(t, errs.Is(err, user.ErrInvalidRole))
	})
}

func TestTokenIssuer_InvalidRole(t *testing.T) {
	_, err := usecase.NewTokenIssuer(jwt.NewService("s", time.Hour)).IssueToken(uuid.New(), user.Role("janitor"))
	assert.True(t, errs.Is(err, errs.ErrValidation))
}
