//go:build unit || e2e

package builder

import (
	"testing"

	"room-booking/internal/domain/auth"
	reqdto "room-booking/internal/handler/dto/request"

	"github.com/stretchr/testify/require"
)

// AuthBuilder produces the login and registration input of a console user,
// both as api payloads and as the domain values the handlers pass on.
type AuthBuilder struct {
	username string
	email    string
	password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		username: "frontdesk",
		email:    "frontdesk@example.com",
		password: "password123",
	}
}

func (b *AuthBuilder) WithUsername(username string) *AuthBuilder {
	b.username = username
	return b
}

func (b *AuthBuilder) WithPassword(password string) *AuthBuilder {
	b.password = password
	return b
}

func (b *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{Username: b.username, Password: b.password}
}

func (b *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{Username: b.username, Email: b.email, Password: b.password}
}

func (b *AuthBuilder) BuildCredentials(t *testing.T) auth.Credentials {
	t.Helper()
	c, err := auth.NewCredentials(b.username, b.password)
	require.NoError(t, err)
	return c
}

func (b *AuthBuilder) BuildRegistration(t *testing.T) auth.Registration {
	t.Helper()
	r, err := auth.NewRegistration(b.username, b.email, b.password)
	require.NoError(t, err)
	return r
}
