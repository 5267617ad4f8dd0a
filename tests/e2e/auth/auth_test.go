//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"room-booking/internal/domain/user"
	"room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/tests/common/authtest"
	"room-booking/tests/common/dbtest"
	"room-booking/tests/common/httptest"
	"room-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL    = "/login"
	registerURL = "/register"
	meURL       = "/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "staff1", string(user.RoleStaff))
	dbtest.CreateTestUser(s.T(), s.DB, "admin1", string(user.RoleAdmin))
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
	}{
		{name: "正常なログイン", username: "staff1", password: authtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "存在しないユーザー", username: "nobody", password: authtest.TestPassword, expectedStatus: http.StatusUnauthorized},
		{name: "間違ったパスワード", username: "staff1", password: "wrong-password", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Username: tt.username, Password: tt.password}, "")

			if tt.expectedStatus != http.StatusOK {
				var res resdto.LoginFailedResponse
				require.Equal(s.T(), tt.expectedStatus, w.Code, w.Body.String())
				httptest.DecodeJSON(s.T(), w, &res)
				s.Equal("Invalid credentials", res.Message)
				return
			}

			var res resdto.LoginResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
			s.NotEmpty(res.AccessToken)
		})
	}
}

func (s *authSuite) TestRegister() {
	s.Run("新規登録", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL,
			request.RegisterRequest{Username: "newstaff", Email: "newstaff@example.com", Password: "s3cret-pass"}, "")

		var res resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.Equal("User registered successfully!", res.Message)

		token := authtest.LoginUser(s.T(), s.Router, "newstaff", "s3cret-pass")
		s.NotEmpty(token)
	})

	s.Run("ユーザー名の重複", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL,
			request.RegisterRequest{Username: "staff1", Email: "other@example.com", Password: "s3cret-pass"}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Username or email already registered")
	})
}

func (s *authSuite) TestMe() {
	s.Run("ログイン中のユーザー", func() {
		token := authtest.LoginUser(s.T(), s.Router, "admin1", authtest.TestPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		var res resdto.MeResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("admin1", res.Username)
		s.Equal(string(user.RoleAdmin), res.Role)
	})

	s.Run("トークンなし", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("期限切れトークン", func() {
		token := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(s.T(), 1, "staff1", user.RoleStaff)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})
}
