package pipeline

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"go-activity-stats/internal/model"
)

// Options controls which periods and columns a report covers
type Options struct {
	// Now fixes "the current year". Zero means time.Now().
	Now time.Time
	// FromYear and ToYear override the computed year range when non-zero.
	FromYear int
	ToYear   int
	// Columns defaults to DefaultColumns().
	Columns []Column
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

// YearRange returns the first and last year to report on. The first year is
// the earliest activity year, capped at the current year. The last year is
// always the current year plus one, whatever the data holds.
func YearRange(activities []model.Activity, opts Options) (int, int) {
	current := opts.now().Year()

	minYear := current
	for i := range activities {
		if y := activities[i].Date.Year(); y < minYear {
			minYear = y
		}
	}
	maxYear := current + 1

	if opts.FromYear != 0 {
		minYear = opts.FromYear
	}
	if opts.ToYear != 0 {
		maxYear = opts.ToYear
	}
	return minYear, maxYear
}

// BuildReport scans the activities once per column for every year in range
// and once more per column for the whole range.
func BuildReport(ctx context.Context, activities []model.Activity, opts Options) *model.Report {
	logger := zerolog.Ctx(ctx)

	columns := opts.Columns
	if len(columns) == 0 {
		columns = DefaultColumns()
	}

	minYear, maxYear := YearRange(activities, opts)
	if minYear > maxYear {
		logger.Warn().Int("min_year", minYear).Int("max_year", maxYear).Msg("empty year range, only the total is reported")
	}
	report := &model.Report{
		MinYear:    minYear,
		MaxYear:    maxYear,
		Columns:    columnLabels(columns),
		Duplicates: FindDuplicates(ctx, activities),
	}

	for year := minYear; year <= maxYear; year++ {
		report.Periods = append(report.Periods, model.Period{
			Label:   strconv.Itoa(year),
			Year:    year,
			Buckets: scanColumns(activities, YearIs(year), columns),
		})
	}

	report.Periods = append(report.Periods, model.Period{
		Label:   model.LabelTotal,
		Total:   true,
		Buckets: scanColumns(activities, YearBetween{From: minYear, To: maxYear}, columns),
	})

	logger.Info().
		Int("min_year", minYear).
		Int("max_year", maxYear).
		Int("periods", len(report.Periods)).
		Int("duplicates", len(report.Duplicates)).
		Msg("📊 report built")
	return report
}

func scanColumns(activities []model.Activity, when Predicate, columns []Column) []model.Bucket {
	buckets := make([]model.Bucket, 0, len(columns))
	for _, c := range columns {
		buckets = append(buckets, model.Bucket{
			Label: c.Label,
			Stats: Scan(activities, And{when, c.Filter}),
		})
	}
	return buckets
}

func columnLabels(columns []Column) []string {
	labels := make([]string, len(columns))
	for i, c := range columns {
		labels[i] = c.Label
	}
	return labels
}

// FindDuplicates reports every activity whose source row is identical to the
// row right before it. Identical rows further apart are not reported.
func FindDuplicates(ctx context.Context, activities []model.Activity) []model.Duplicate {
	logger := zerolog.Ctx(ctx)

	var dups []model.Duplicate
	for i := 1; i < len(activities); i++ {
		prev, cur := &activities[i-1], &activities[i]
		if cur.Raw == nil || !cur.Raw.Equal(prev.Raw) {
			continue
		}
		dups = append(dups, model.Duplicate{
			Line:         cur.Line,
			PreviousLine: prev.Line,
			Row:          cur.Raw,
		})
		logger.Warn().
			Int("line", cur.Line).
			Int("previous_line", prev.Line).
			Interface("row", cur.Raw).
			Msg("duplicate row")
	}
	return dups
}
