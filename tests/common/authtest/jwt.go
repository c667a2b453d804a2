//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"courtside/internal/domain/user"
	"courtside/internal/pkg/config"
	"courtside/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the identity provider would, signed with the test secret.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).Sign(userID, role)
	require.NoError(t, err)
	return token
}

// NewUser returns a fresh user id with a token for role.
func (h *JWTHelper) NewUser(t *testing.T, role user.Role) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	return id, h.GenerateToken(t, id, role)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).Sign(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
