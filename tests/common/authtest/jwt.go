//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"room-booking/internal/domain/user"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens with the secret the router under test validates against.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret, cfg.Duration)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID int64, username string, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, username, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken issues the token far enough in the past that it has already expired.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID int64, username string, role user.Role) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-h.service.TokenDuration() - time.Minute))
	token, err := h.service.WithClock(past).GenerateToken(userID, username, role)
	require.NoError(t, err)
	return token
}
