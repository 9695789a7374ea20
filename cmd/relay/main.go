package main

import (
	"context"
	"log/slog"
	"os"

	"shareit/cmd/bootstrap"
	"shareit/internal/infra/outbox"

	"go.uber.org/fx"
)

func startRelay(lc fx.Lifecycle, relay *outbox.Relay, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting outbox relay")
			go func() {
				defer close(done)
				relay.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			logger.Info("stopping outbox relay")
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.RelayModule,
		fx.Invoke(startRelay),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("relay failed to start", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("relay failed to stop cleanly", "error", err)
	}
}
