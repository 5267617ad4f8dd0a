//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/infra/db"
	"room-booking/tests/common/dbtest"
	"room-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// TestPassword matches the hash stored by dbtest.CreateTestUser.
const TestPassword = "password123"

func LoginUser(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resdto.LoginResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.NotEmpty(t, res.AccessToken, "access_token is empty")

	return res.AccessToken
}

// CreateAndLogin stores a user with TestPassword and returns its api token.
func CreateAndLogin(t *testing.T, conn db.DBTX, router *gin.Engine, username, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, conn, username, role)
	return LoginUser(t, router, username, TestPassword)
}
