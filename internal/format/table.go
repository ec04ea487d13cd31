// Package format renders reports as fixed-width text tables.
package format

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"go-activity-stats/internal/model"
	"go-activity-stats/internal/pipeline"
)

const (
	labelWidth  = 5
	columnWidth = 17
)

type statRow struct {
	label string
	cell  func(st model.StatBundle) string
}

var statRows = []statRow{
	{"Dist:", func(st model.StatBundle) string { return st.DistanceSum.StringFixed(2) }},
	{"Long:", func(st model.StatBundle) string { return st.DistanceMax.StringFixed(2) }},
	{"Pace:", paceCell(func(st model.StatBundle) time.Duration { return st.AvgPace })},
	{"Fast:", paceCell(func(st model.StatBundle) time.Duration { return st.FastestPace })},
	{"Slow:", paceCell(func(st model.StatBundle) time.Duration { return st.SlowestPace })},
	{"Count:", func(st model.StatBundle) string { return fmt.Sprint(st.Count) }},
	{"Outdoor:", func(st model.StatBundle) string { return fmt.Sprint(st.OutdoorCount) }},
	{"Time:", func(st model.StatBundle) string { return pipeline.FormatClock(st.DurationSum) }},
	{"Long:", func(st model.StatBundle) string { return pipeline.FormatClock(st.DurationMax) }},
	{"Climb:", wholeCell(func(st model.StatBundle) decimal.Decimal { return st.ClimbSum })},
	{"Cals:", wholeCell(func(st model.StatBundle) decimal.Decimal { return st.CaloriesSum })},
	{"MaxCals:", wholeCell(func(st model.StatBundle) decimal.Decimal { return st.CaloriesMax })},
}

// paceCell leaves the cell blank when the bucket saw no pace, so the
// fastest/slowest sentinels are never printed.
func paceCell(get func(model.StatBundle) time.Duration) func(model.StatBundle) string {
	return func(st model.StatBundle) string {
		if !st.HasPace() {
			return ""
		}
		return pipeline.FormatClock(get(st))
	}
}

func wholeCell(get func(model.StatBundle) decimal.Decimal) func(model.StatBundle) string {
	return func(st model.StatBundle) string {
		return get(st).StringFixed(0)
	}
}

// RenderReport writes every period of the report, each followed by a blank line.
func RenderReport(w io.Writer, report *model.Report) error {
	for i := range report.Periods {
		if err := RenderPeriod(w, &report.Periods[i]); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// RenderPeriod writes the header and stat rows of one period.
func RenderPeriod(w io.Writer, p *model.Period) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-*s", labelWidth, p.Label))
	for _, b := range p.Buckets {
		sb.WriteString(fmt.Sprintf(" %*s", columnWidth, b.Label))
	}
	sb.WriteString("\n")

	for _, row := range statRows {
		// Long labels eat into the first column so the columns stay aligned.
		first := columnWidth - (len(row.label) - labelWidth)
		sb.WriteString(row.label)
		for i, b := range p.Buckets {
			width := columnWidth
			if i == 0 {
				width = first
			}
			sb.WriteString(fmt.Sprintf(" %*s", width, row.cell(b.Stats)))
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderDuplicates lists duplicate rows, one per line.
func RenderDuplicates(w io.Writer, dups []model.Duplicate) error {
	for _, d := range dups {
		if _, err := fmt.Fprintf(w, "Duplicate row: line %d repeats line %d: %v\n", d.Line, d.PreviousLine, d.Row); err != nil {
			return err
		}
	}
	return nil
}
