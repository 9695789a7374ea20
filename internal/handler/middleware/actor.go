package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/jwt"
	"shareit/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserIDKey      = "user_id"
	ctxActorSourceKey = "actor_source"
)

var (
	errMissingActor = errors.New("missing actor identity")
	errInvalidActor = errors.New("invalid actor identity")
)

// ActorMiddleware resolves the acting user from the user id header, or from a
// bearer token when a signing secret is configured.
type ActorMiddleware struct {
	header string
	tokens *jwt.Service
}

func NewActorMiddleware(cfg config.Config, tokens *jwt.Service) *ActorMiddleware {
	return &ActorMiddleware{
		header: cfg.Auth.UserIDHeader,
		tokens: tokens,
	}
}

func (m *ActorMiddleware) RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := strings.TrimSpace(c.GetHeader(m.header)); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				httperr.AbortWithError(c, http.StatusBadRequest, errInvalidActor, "Invalid "+m.header+" header", nil)
				return
			}
			setActor(c, id, "header")
			c.Next()
			return
		}

		token := bearerToken(c)
		if token == "" || !m.tokens.Enabled() {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "User identity required", nil)
			return
		}

		id, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "bearer token rejected", "error", err)
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}
		setActor(c, id, "token")
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setActor(c *gin.Context, id int64, source string) {
	c.Set(ctxUserIDKey, id)
	c.Set(ctxActorSourceKey, source)
	c.Request = c.Request.WithContext(logger.With(c.Request.Context(), slog.Int64("actor_id", id)))
}

func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}

	id, ok := userID.(int64)
	return id, ok
}
