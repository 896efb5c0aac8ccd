package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/couchcryptid/animal-tracking-map/internal/adapter/movebank"
	"github.com/couchcryptid/animal-tracking-map/internal/config"
	"github.com/couchcryptid/animal-tracking-map/internal/domain"
	"github.com/couchcryptid/animal-tracking-map/internal/observability"
	"github.com/couchcryptid/animal-tracking-map/internal/pipeline"
	"github.com/couchcryptid/animal-tracking-map/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg).With("run_id", uuid.NewString())
	metrics := observability.NewMetrics()

	renderer, err := report.NewRenderer(cfg, logger, metrics)
	if err != nil {
		logger.Error("failed to initialize renderer", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("generating animal tracking map",
		"source", cfg.MovebankBaseURL,
		"reference_time", cfg.ReferenceTime,
		"output", cfg.OutputFile,
	)

	client := movebank.NewClient(cfg, logger, metrics)
	collector := pipeline.NewCollector(client, cfg, logger, metrics)

	records, results := collector.Collect(ctx)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}

	markers := domain.BuildMarkers(records, cfg.ReferenceTime)
	paths := domain.BuildPaths(markers)

	path, err := renderer.Write(markers)
	if err != nil {
		logger.Error("failed to write report", "error", err)
		os.Exit(1)
	}

	logger.Info("map generated",
		"path", path,
		"individuals", len(paths),
		"points", len(markers),
		"studies_attempted", len(results),
		"studies_failed", failed,
	)
}
