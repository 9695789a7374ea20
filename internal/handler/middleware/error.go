package middleware

import (
	"log/slog"
	"net/http"

	"shareit/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes a response for handlers that recorded an error without
// answering. Public errors carry their prepared body; anything else is
// classified by kind.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if resp, ok := lastPublic(c.Errors); ok {
			c.JSON(resp.Status, resp)
			return
		}
		if last := c.Errors.Last(); last != nil {
			slog.ErrorContext(c.Request.Context(), "unanswered request error",
				"path", c.FullPath(), "error", last.Err)
			httperr.Abort(c, last.Err)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
		}
	}
}

func lastPublic(list []*gin.Error) (httperr.Response, bool) {
	for i := len(list) - 1; i >= 0; i-- {
		if !list[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := list[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

// Recovery turns a panic into a 500 with the usual error body.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"panic", r, "method", c.Request.Method, "path", c.Request.URL.Path)
				httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
			}
		}()
		c.Next()
	}
}
