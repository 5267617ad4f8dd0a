package web

import (
	"net/http"

	"room-booking/internal/domain/form"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/cookie"
	"room-booking/internal/usecase/console"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth      console.AuthConsole
	cookieCfg config.CookieConfig
}

func NewAuthHandler(auth console.AuthConsole, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{auth: auth, cookieCfg: cookieCfg}
}

type loginView struct {
	Form   form.Login
	Next   string
	Errors form.FieldErrors
	Error  string
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	render(c, http.StatusOK, "login.html", "Login", "login", loginView{Next: safeNext(c.Query("next"))})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var f form.Login
	_ = c.ShouldBind(&f)
	next := safeNext(c.PostForm("next"))

	token, o := h.auth.Login(c.Request.Context(), f)
	if token == "" {
		f.Password = ""
		render(c, http.StatusUnauthorized, "login.html", "Login", "login", loginView{Form: f, Next: next, Errors: o.Fields, Error: o.Error})
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, token)
	c.Redirect(http.StatusSeeOther, next)
}

func (h *AuthHandler) RegisterForm(c *gin.Context) {
	render(c, http.StatusOK, "register.html", "Register", "login", formView{Action: "/register", Form: form.Register{}})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var f form.Register
	_ = c.ShouldBind(&f)
	o := h.auth.Register(c.Request.Context(), f)
	f.Password = ""
	view := formView{Action: "/register", Form: f}
	render(c, outcomeStatus(o), "register.html", "Register", "login", view.withOutcome(o))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Redirect(http.StatusSeeOther, "/")
}
