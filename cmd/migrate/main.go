package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"shareit/internal/pkg/logger"
	"shareit/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies migrations/ declaratively with the atlas CLI.
func main() {
	dryRun := flag.Bool("dry-run", false, "print the planned changes without applying them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log)

	client, err := atlasexec.NewClient(".", cfg.Migrate.AtlasBin)
	if err != nil {
		log.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          cfg.Migrate.SchemaURL,
		DevURL:      cfg.Migrate.DevURL,
		DryRun:      *dryRun,
		AutoApprove: true,
	})
	if err != nil {
		log.Error("schema apply failed", "error", err)
		os.Exit(1)
	}

	for _, stmt := range res.Changes.Pending {
		log.Info("pending change", "sql", stmt)
	}
	log.Info("schema apply finished", "applied", len(res.Changes.Applied), "dry_run", *dryRun)
}
