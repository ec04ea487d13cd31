package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"go-activity-stats/internal/api"
	"go-activity-stats/internal/api/handler"
	"go-activity-stats/internal/config"
	"go-activity-stats/internal/logging"
	"go-activity-stats/internal/pipeline"
	"go-activity-stats/internal/store"
	"go-activity-stats/pkg/router"
	"go-activity-stats/pkg/utils"
)

// @title Activity Stats API
// @version 1.0
// @description Read-only access to per-year activity statistics computed from a cardio activities export.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.Load("activity-stats-api", os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	if err := Run(logger.WithContext(context.Background()), cfg, signals); err != nil {
		logger.Fatal().Err(err).Msg("server exited with error")
	}
}

// Run builds the report once, then serves it until a signal arrives or the
// context ends.
func Run(ctx context.Context, cfg config.Config, signals <-chan os.Signal) error {
	logger := zerolog.Ctx(ctx)

	result, err := pipeline.Run(ctx, pipeline.Job{
		Source: cfg.File,
		Options: pipeline.Options{
			FromYear: cfg.FromYear,
			ToYear:   cfg.ToYear,
			Columns:  pipeline.SelectColumns(cfg.Columns()),
		},
		Export: cfg.Export,
	})
	if err != nil {
		return err
	}

	var runs handler.RunLister
	if cfg.Export.DB != "" {
		db, err := store.Open(ctx, cfg.Export.DB)
		if err != nil {
			return err
		}
		defer db.Close()
		runs = db
	}

	r := router.New(*logger)
	api.RegisterRoutes(r, handler.NewReportHandler(result.Report, result.Metrics, runs))
	srv := r.Server(cfg.Addr)

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("🚀 server started")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-signals:
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), utils.ParseDuration(cfg.ShutdownTimeout, 5*time.Second))
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
