package web

import (
	"net/http"
	"net/url"

	"room-booking/internal/handler/middleware"
	"room-booking/internal/infra/apiclient"
	"room-booking/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
)

// ForwardToken makes api calls of the request carry the session token as a Bearer header
// and the request id of this page.
func ForwardToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := apiclient.WithRequestID(c.Request.Context(), middleware.GetRequestID(c))
		if token := cookie.GetAccessToken(c); token != "" {
			ctx = apiclient.WithToken(ctx, token)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireLogin sends visitors without a session to the login form.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie.GetAccessToken(c) == "" {
			c.Redirect(http.StatusSeeOther, "/login?next="+url.QueryEscape(c.Request.URL.Path))
			c.Abort()
			return
		}
		c.Next()
	}
}
