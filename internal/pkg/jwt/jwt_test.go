//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"room-booking/internal/domain/user"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestService(t *testing.T) {
	issued := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(issued)
	svc := jwt.NewService(secret, time.Hour).WithClock(clk)

	token, err := svc.GenerateToken(7, "frontdesk", user.RoleAdmin)
	require.NoError(t, err)

	t.Run("success: valid token", func(t *testing.T) {
		clk.Set(issued.Add(59 * time.Minute))

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, "7", claims.Subject)
		assert.Equal(t, jwt.Issuer, claims.Issuer)
		assert.Equal(t, user.RoleAdmin, claims.Role)
	})

	t.Run("error: expired token", func(t *testing.T) {
		clk.Set(issued.Add(2 * time.Hour))

		_, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("error: signed with another secret", func(t *testing.T) {
		clk.Set(issued)
		other := jwt.NewService("other-secret", time.Hour).WithClock(clk)

		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: foreign issuer", func(t *testing.T) {
		clk.Set(issued)
		foreign, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
			UserID: 7,
			Role:   user.RoleAdmin,
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: gojwt.NewNumericDate(issued.Add(time.Hour)),
			},
		}).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = svc.ValidateToken(foreign)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: unknown role is not issued", func(t *testing.T) {
		_, err := svc.GenerateToken(7, "frontdesk", user.Role("owner"))
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}
