package bootstrap

import (
	"log/slog"

	"shareit/internal/pkg/config"
	"shareit/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService returns a disabled service when no secret is configured,
// leaving the user id header as the only identity source.
func NewJWTService(cfg config.Config) *jwt.Service {
	if cfg.Auth.JWTSecret == "" {
		slog.Info("bearer tokens disabled, actor resolved from header only", "header", cfg.Auth.UserIDHeader)
	}
	return jwt.NewService(cfg.Auth.JWTSecret, cfg.Auth.JWTDuration)
}
