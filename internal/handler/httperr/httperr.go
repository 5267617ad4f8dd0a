package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the failure body shared by every endpoint: {"error": "..."}.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

// AbortWithError answers msg and keeps err on the context, where ErrorHandler logs it.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg, Detail: detail}
	_ = c.Error(err).SetType(gin.ErrorTypePublic).SetMeta(resp)
	c.AbortWithStatusJSON(status, resp)
}

// Abort answers msg when there is no underlying error to keep, e.g. a missing token.
func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Response{Status: status, Error: msg})
}
