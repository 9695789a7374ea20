package middleware

import (
	"log/slog"
	"slices"

	"shareit/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always lets browsers send the acting-user header, even when
// CORS_ALLOW_HEADERS is overridden without it.
func NewCORSMiddleware(cfg config.CORSConfig, auth config.AuthConfig) gin.HandlerFunc {
	headers := slices.Clone(cfg.AllowHeaders)
	if auth.UserIDHeader != "" && !slices.Contains(headers, auth.UserIDHeader) {
		headers = append(headers, auth.UserIDHeader)
	}

	slog.Info("cors configured", "origins", cfg.AllowOrigins, "headers", headers)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     headers,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
