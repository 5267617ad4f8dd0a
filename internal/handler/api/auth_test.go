//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"room-booking/internal/domain/user"
	"room-booking/internal/handler/api"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/jwt"
	"room-booking/internal/usecase"
	"room-booking/internal/usecase/commands"
	"room-booking/tests/common/authtest"
	"room-booking/tests/common/builder"
	"room-booking/tests/common/httptest"
	"room-booking/tests/common/testutil"
	commandsmock "room-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	jwtHelper    *authtest.JWTHelper
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	handler := api.NewAuthHandler(s.mockCommands)

	jwtCfg := config.NewTestConfig().JWT
	s.jwtHelper = authtest.NewJWTHelper(jwtCfg)
	authMiddleware := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService(jwtCfg.Secret, jwtCfg.Duration)))

	s.router.POST("/login", handler.Login)
	s.router.POST("/register", handler.Register)
	s.router.GET("/me", authMiddleware.RequireAuth(), handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/login"
	b := builder.NewAuthBuilder()
	reqBody := b.BuildDTO()
	credentials := b.BuildCredentials(s.T())

	s.Run("success: returns 200 with access token", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), credentials).
			Return(&commands.LoginResult{UserID: 1, AccessToken: "test-jwt-token"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.AccessToken)
	})

	s.Run("error: 401 with message for invalid credentials", func() {
		wrong := builder.NewAuthBuilder().WithUsername("nightshift").WithPassword("not-the-password")
		s.mockCommands.EXPECT().Login(gomock.Any(), wrong.BuildCredentials(s.T())).
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, wrong.BuildDTO(), "")

		var response resdto.LoginFailedResponse
		s.Equal(http.StatusUnauthorized, rec.Code)
		httptest.DecodeJSON(s.T(), rec, &response)
		s.Equal("Invalid credentials", response.Message)
	})

	s.Run("error: 400 when a field is missing", func() {
		for _, field := range []string{"username", "password"} {
			s.Run(field, func() {
				body := testutil.PayloadOf(s.T(), reqBody, testutil.Without(field))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "username and password are required")
			})
		}
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), credentials).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/register"
	b := builder.NewAuthBuilder()
	reqBody := b.BuildRegisterDTO()
	registration := b.BuildRegistration(s.T())

	s.Run("success: returns 201", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), registration).Return(int64(7), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("User registered successfully!", response.Message)
	})

	s.Run("error: 409 when username or email is taken", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), registration).
			Return(int64(0), errs.Mark(errors.New("unique violation"), errs.ErrDuplicateUser)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Username or email already registered")
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate testutil.Edit
			msg    string
		}{
			{name: "password 7 chars", mutate: testutil.With("password", "1234567"), msg: "password must be at least 8 characters long"},
			{name: "invalid email", mutate: testutil.With("email", "invalid-email"), msg: "invalid email format"},
			{name: "username 2 chars", mutate: testutil.With("username", "ab"), msg: "username must be 3-50 characters"},
			{name: "missing email", mutate: testutil.Without("email"), msg: "Invalid request format"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.PayloadOf(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns identity from the token", func() {
		token := s.jwtHelper.GenerateToken(s.T(), 42, "frontdesk", user.RoleStaff)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)

		var response resdto.MeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resdto.MeResponse{ID: 42, Username: "frontdesk", Role: "staff"}, response)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 with a forged token", func() {
		forged := authtest.NewJWTHelper(config.JWTConfig{Secret: "other-secret", Duration: time.Minute}).
			GenerateToken(s.T(), 42, "frontdesk", user.RoleStaff)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, forged)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 401 with an expired token", func() {
		expired := s.jwtHelper.CreateExpiredToken(s.T(), 42, "frontdesk", user.RoleStaff)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, expired)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}
