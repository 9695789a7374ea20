package middleware

import (
	"log/slog"
	"strings"
	"time"

	"shareit/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	ctxRequestIDKey = "request_id"
	maxRequestIDLen = 64
)

// RequestLogger tags the request context with a request id, so use case and
// repository logs of the same request can be joined, and logs one line per
// completed request.
func RequestLogger(l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := requestIDFrom(c)

		c.Set(ctxRequestIDKey, requestID)
		c.Header(HeaderRequestID, requestID)
		c.Request = c.Request.WithContext(logger.With(c.Request.Context(), slog.String("request_id", requestID)))

		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("route", c.FullPath()),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		}
		if actorID, ok := GetUserID(c); ok {
			attrs = append(attrs, slog.Int64("actor_id", actorID))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		l.LogAttrs(c.Request.Context(), level, "request completed", attrs...)
	}
}

// requestIDFrom keeps a caller supplied id so traces can be joined across services.
func requestIDFrom(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(HeaderRequestID)); id != "" && len(id) <= maxRequestIDLen {
		return id
	}
	return uuid.NewString()
}
