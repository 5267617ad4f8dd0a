package api

import (
	"net/http"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
}

func NewAuthHandler(authCommands commands.AuthCommands) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
	}
}

// @Summary User login
// @Description Login with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} resdto.LoginFailedResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		abortWithError(c, err)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), credentials)
	if err != nil {
		if errs.Is(err, commands.ErrInvalidCredentials) {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, resdto.LoginFailedResponse{Message: "Invalid credentials"})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{AccessToken: result.AccessToken})
}

// @Summary Register staff user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	registration, err := req.ToDomain()
	if err != nil {
		abortWithError(c, err)
		return
	}

	if _, err := h.authCommands.Register(c.Request.Context(), registration); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.MessageResponse{Message: "User registered successfully!"})
}

// @Summary Get current user
// @Description Identity carried by the access token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} httperr.Response
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user not in context"), "User not authenticated", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	c.JSON(http.StatusOK, resdto.MeResponse{
		ID:       userID,
		Username: middleware.GetUsername(c),
		Role:     role.String(),
	})
}
