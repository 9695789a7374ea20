package components

import (
	"context"

	"shareit/internal/infra/mq"
	"shareit/internal/infra/outbox"
	"shareit/internal/infra/repository"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RelayModule = fx.Module("relay",
	fx.Provide(
		clock.NewRealClock,
		NewPublisher,
		NewRelay,
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config) (*mq.Publisher, error) {
	pub, err := mq.NewPublisher(cfg.Broker)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}

func NewRelay(pool *pgxpool.Pool, jobs *repository.NotificationRepository, pub *mq.Publisher, clk clock.Clock, cfg config.Config) *outbox.Relay {
	return outbox.NewRelay(pool, jobs, pub, clk, cfg.Relay)
}
