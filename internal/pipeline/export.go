package pipeline

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"

	"go-activity-stats/internal/model"
	"go-activity-stats/internal/store"
	"go-activity-stats/pkg/utils"
)

// ExportManager handles data export operations for one run
type ExportManager struct {
	RunID      string
	ExportSpec model.Export
	Output     *utils.OutputManager
}

// NewExportManager creates an export manager for a run
func NewExportManager(runID string, spec model.Export) *ExportManager {
	return &ExportManager{
		RunID:      runID,
		ExportSpec: spec,
		Output:     utils.NewOutputManager(spec.OutputDir),
	}
}

// exportDocument is the JSON export layout
type exportDocument struct {
	Metrics *model.RunMetrics `json:"metrics"`
	Report  *model.Report     `json:"report"`
}

// ExportReport writes the report to every configured target. Failures are
// reported per target in the results rather than aborting the others.
func ExportReport(ctx context.Context, report *model.Report, metrics *model.RunMetrics, spec model.Export) []model.ExportResult {
	if !spec.Enabled() {
		return nil
	}

	em := NewExportManager(metrics.RunID, spec)
	var results []model.ExportResult

	if spec.File != "" {
		results = append(results, em.exportToFile(ctx, report, metrics))
	}
	if spec.DB != "" {
		results = append(results, em.exportToDatabase(ctx, report, metrics))
	}
	return results
}

// exportToFile exports data to a file (CSV or JSON)
func (em *ExportManager) exportToFile(ctx context.Context, report *model.Report, metrics *model.RunMetrics) model.ExportResult {
	logger := zerolog.Ctx(ctx)

	result := model.ExportResult{
		RunID:     em.RunID,
		Type:      em.Output.GetFileType(em.ExportSpec.File),
		Timestamp: time.Now(),
	}

	path, err := em.Output.GetOutputFilePath(em.RunID, em.ExportSpec.File)
	if err == nil {
		result.Path = path
		switch result.Type {
		case "json":
			result.RecordCount, err = exportToJSON(path, report, metrics)
		default:
			// Unknown extensions get CSV
			result.Type = "csv"
			result.RecordCount, err = exportToCSV(path, em.RunID, report)
		}
	}

	result.Success = err == nil
	if err != nil {
		result.Error = err.Error()
		logger.Error().Err(err).Str("path", em.ExportSpec.File).Msg("❌ export to file failed")
		return result
	}

	size, _ := em.Output.GetFileSize(path)
	logger.Info().
		Str("path", path).
		Str("type", result.Type).
		Int("records", result.RecordCount).
		Int64("bytes", size).
		Msg("💾 export to file successful")
	return result
}

// exportToCSV writes one row per (period, column) bucket
func exportToCSV(path, runID string, report *model.Report) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	var rows []map[string]string
	for _, p := range report.Periods {
		for _, b := range p.Buckets {
			rows = append(rows, bucketRow(runID, p, b))
		}
	}

	header := []string{"run_id", "period", "category"}
	if len(rows) > 0 {
		metricKeys := maps.Keys(rows[0])
		sort.Strings(metricKeys)
		for _, k := range metricKeys {
			if k != "run_id" && k != "period" && k != "category" {
				header = append(header, k)
			}
		}
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		record := make([]string, len(header))
		for i, k := range header {
			record[i] = row[k]
		}
		if err := writer.Write(record); err != nil {
			return 0, fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return len(rows), nil
}

// bucketRow flattens a bucket into CSV cells. Pace cells stay empty when no
// activity in the bucket had a pace.
func bucketRow(runID string, p model.Period, b model.Bucket) map[string]string {
	st := b.Stats
	row := map[string]string{
		"run_id":        runID,
		"period":        p.Label,
		"category":      b.Label,
		"count":         strconv.Itoa(st.Count),
		"outdoor_count": strconv.Itoa(st.OutdoorCount),
		"distance_sum":  st.DistanceSum.StringFixed(2),
		"distance_max":  st.DistanceMax.StringFixed(2),
		"duration_sum":  FormatClock(st.DurationSum),
		"duration_max":  FormatClock(st.DurationMax),
		"climb_sum":     st.ClimbSum.StringFixed(0),
		"climb_max":     st.ClimbMax.StringFixed(0),
		"calories_sum":  st.CaloriesSum.StringFixed(0),
		"calories_max":  st.CaloriesMax.StringFixed(0),
		"pace_samples":  strconv.Itoa(st.PaceSamples),
		"avg_pace":      "",
		"fastest_pace":  "",
		"slowest_pace":  "",
	}
	if st.HasPace() {
		row["avg_pace"] = FormatClock(st.AvgPace)
		row["fastest_pace"] = FormatClock(st.FastestPace)
		row["slowest_pace"] = FormatClock(st.SlowestPace)
	}
	return row
}

// exportToJSON writes the report together with the run metrics
func exportToJSON(path string, report *model.Report, metrics *model.RunMetrics) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(exportDocument{Metrics: metrics, Report: report}); err != nil {
		return 0, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return countBuckets(report), nil
}

// exportToDatabase stores the run in the sqlite file
func (em *ExportManager) exportToDatabase(ctx context.Context, report *model.Report, metrics *model.RunMetrics) model.ExportResult {
	logger := zerolog.Ctx(ctx)

	result := model.ExportResult{
		RunID:     em.RunID,
		Type:      "database",
		Path:      em.ExportSpec.DB,
		Timestamp: time.Now(),
	}

	err := func() error {
		db, err := store.Open(ctx, em.ExportSpec.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		result.RecordCount, err = db.SaveReport(ctx, metrics, report)
		return err
	}()

	result.Success = err == nil
	if err != nil {
		result.Error = err.Error()
		logger.Error().Err(err).Str("db", em.ExportSpec.DB).Msg("❌ export to database failed")
		return result
	}

	logger.Info().Str("db", em.ExportSpec.DB).Int("records", result.RecordCount).Msg("💾 export to database successful")
	return result
}

func countBuckets(report *model.Report) int {
	n := 0
	for _, p := range report.Periods {
		n += len(p.Buckets)
	}
	return n
}
