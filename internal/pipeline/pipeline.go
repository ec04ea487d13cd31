package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"go-activity-stats/internal/model"
)

// Job describes one report run
type Job struct {
	Source  string
	Options Options
	Export  model.Export
}

// Result is everything a run produced
type Result struct {
	Report  *model.Report
	Metrics *model.RunMetrics
	Exports []model.ExportResult
}

// ------------------- Pipeline Runner -------------------

// Run ingests the export, maps it onto activities, builds the report and
// writes any configured exports. Stages run one after the other; a malformed
// record stops the run.
func Run(ctx context.Context, job Job) (*Result, error) {
	metrics := &model.RunMetrics{
		RunID:     uuid.NewString(),
		Source:    job.Source,
		StartTime: time.Now(),
	}

	logger := zerolog.Ctx(ctx).With().Str("run_id", metrics.RunID).Logger()
	ctx = logger.WithContext(ctx)
	logger.Info().Str("source", job.Source).Msg("🚀 starting report run")

	done := metrics.StartStage("ingestion")
	rows, err := Ingest(ctx, job.Source)
	if err != nil {
		return nil, err
	}
	done(len(rows))
	metrics.Rows = len(rows)

	done = metrics.StartStage("transformation")
	rows = TransformRecords(ctx, rows)
	done(len(rows))

	done = metrics.StartStage("validation")
	activities, err := ValidateRecords(ctx, rows)
	if err != nil {
		return nil, err
	}
	done(len(activities))
	metrics.Activities = len(activities)

	done = metrics.StartStage("aggregation")
	report := BuildReport(ctx, activities, job.Options)
	done(len(activities))

	result := &Result{Report: report, Metrics: metrics}

	if job.Export.Enabled() {
		done = metrics.StartStage("export")
		result.Exports = ExportReport(ctx, report, metrics, job.Export)
		done(len(result.Exports))
	}

	metrics.Complete()
	logger.Info().Dur("elapsed", metrics.Elapsed()).Msg("🏁 report run completed")
	return result, nil
}
