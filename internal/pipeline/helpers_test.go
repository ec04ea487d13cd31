package pipeline

import (
	"testing"

	"github.com/shopspring/decimal"

	"go-activity-stats/internal/model"
)

const testHeader = "Date,Type,Distance (mi),Duration,Average Pace,Climb (ft),Calories Burned,GPX File\n"

// row builds a normalized source row in the export's column layout.
func row(line int, date, typ, dist, dur, pace, climb, cals, gpx string) model.SourceRow {
	return model.SourceRow{
		Line: line,
		Record: model.GenericRecord{
			FieldDate:     date,
			FieldType:     typ,
			FieldDistance: dist,
			FieldDuration: dur,
			FieldPace:     pace,
			FieldClimb:    climb,
			FieldCalories: cals,
			FieldGPXFile:  gpx,
		},
	}
}

func mustActivity(t *testing.T, r model.SourceRow) model.Activity {
	t.Helper()
	a, err := ToActivity(r)
	if err != nil {
		t.Fatalf("ToActivity(line %d): %v", r.Line, err)
	}
	return a
}

func mustActivities(t *testing.T, rows ...model.SourceRow) []model.Activity {
	t.Helper()
	out := make([]model.Activity, 0, len(rows))
	for _, r := range rows {
		out = append(out, mustActivity(t, r))
	}
	return out
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// sampleRows is one run, one walk and one ride in 2023.
func sampleRows() []model.SourceRow {
	return []model.SourceRow{
		row(2, "2023-03-01 07:00:00", "Running", "3.0", "30:00", "10:00", "120", "300", "2023-03-01.gpx"),
		row(3, "2023-04-02 12:00:00", "Walking", "1.0", "20:00", "", "", "90", ""),
		row(4, "2023-05-03 18:30:00", "Cycling", "10.0", "40:00", "4:00", "", "450", "2023-05-03.gpx"),
	}
}
