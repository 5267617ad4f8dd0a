package middleware

import (
	"log/slog"
	"net/http"

	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler reports server-side causes with their stack and answers
// requests whose handlers aborted without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		var public *httperr.Response
		for _, e := range c.Errors {
			status := c.Writer.Status()
			if resp, ok := e.Meta.(httperr.Response); ok {
				status = resp.Status
				if e.IsType(gin.ErrorTypePublic) {
					public = &resp
				}
			}
			if status >= http.StatusInternalServerError {
				slog.Error("リクエストの処理に失敗しました",
					"request_id", GetRequestID(c),
					"path", c.Request.URL.Path,
					"error", e.Err.Error(),
					"stack", errs.ExtractStackLines(e.Err, 12))
			}
		}

		if c.Writer.Written() {
			return
		}
		if public != nil {
			c.JSON(public.Status, public)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{Error: "Internal server error"})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("panicから復帰しました", "panic", r, "request_id", GetRequestID(c), "path", c.Request.URL.Path)
				httperr.Abort(c, http.StatusInternalServerError, "Internal server error")
			}
		}()
		c.Next()
	}
}
