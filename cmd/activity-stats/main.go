package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"go-activity-stats/internal/config"
	"go-activity-stats/internal/format"
	"go-activity-stats/internal/logging"
	"go-activity-stats/internal/pipeline"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run loads configuration, computes the report and prints it. Errors are
// logged before being returned.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load("activity-stats", args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		// Log settings are not known yet; report with the defaults
		logger := logging.New("info", "console", stderr)
		logger.Error().Err(err).Msg("invalid configuration")
		return err
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, stderr)
	ctx = logger.WithContext(ctx)

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
		logger.Error().Err(err).Str("file", cfg.File).Msg("report failed")
		return err
	}

	if err := format.RenderDuplicates(stdout, result.Report.Duplicates); err != nil {
		return err
	}
	if err := format.RenderReport(stdout, result.Report); err != nil {
		return err
	}

	for _, exp := range result.Exports {
		if !exp.Success {
			return fmt.Errorf("export to %s failed: %s", exp.Path, exp.Error)
		}
	}
	return nil
}
