package bootstrap

import (
	"context"
	"log/slog"

	"shareit/internal/infra/db"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)

var LoggerModule = fx.Module("logger",
	fx.Provide(NewLogger),
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return logger.New(cfg.Log)
}

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() {
		pool.Close()
		slog.Info("database pool closed")
	}))
	return pool, nil
}
