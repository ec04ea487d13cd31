package model

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCategoryOf(t *testing.T) {
	for in, want := range map[string]Category{
		"Running":  Running,
		"Walking":  Walking,
		"Cycling":  Cycling,
		"Swimming": Other,
		"running":  Other,
		"":         Other,
	} {
		if got := CategoryOf(in); got != want {
			t.Errorf("CategoryOf(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGenericRecordEqual(t *testing.T) {
	a := GenericRecord{"Date": "2023-01-01 07:00:00", "Type": "Running"}

	if !a.Equal(GenericRecord{"Type": "Running", "Date": "2023-01-01 07:00:00"}) {
		t.Error("identical rows should be equal")
	}
	if a.Equal(GenericRecord{"Date": "2023-01-01 07:00:00", "Type": "Walking"}) {
		t.Error("rows with different values should differ")
	}
	if a.Equal(GenericRecord{"Date": "2023-01-01 07:00:00", "Kind": "Running"}) {
		t.Error("rows with different keys should differ")
	}
	if a.Equal(GenericRecord{"Date": "2023-01-01 07:00:00"}) {
		t.Error("rows of different width should differ")
	}
}

func TestFieldErrorUnwrap(t *testing.T) {
	missing := &FieldError{Line: 4, Field: "Distance (mi)", Value: "", Err: ErrMissingField}
	if !errors.Is(missing, ErrMissingField) || errors.Is(missing, ErrMalformedDuration) {
		t.Errorf("missing-field error chain is wrong: %v", missing)
	}

	bad := &FieldError{Line: 5, Field: "Duration", Value: "1:2:3:4", Err: &DurationError{Value: "1:2:3:4", Reason: "too many parts"}}
	if !errors.Is(bad, ErrMalformedDuration) || errors.Is(bad, ErrMissingField) {
		t.Errorf("duration error chain is wrong: %v", bad)
	}
	var de *DurationError
	if !errors.As(bad, &de) || de.Value != "1:2:3:4" {
		t.Errorf("expected DurationError in chain, got %v", bad)
	}
	if msg := bad.Error(); !strings.Contains(msg, "line 5") || !strings.Contains(msg, "Duration") {
		t.Errorf("message %q should name line and field", msg)
	}
}

func TestReportLookups(t *testing.T) {
	r := &Report{Periods: []Period{
		{Label: "2023", Buckets: []Bucket{{Label: LabelRun}, {Label: LabelAll}}},
		{Label: LabelTotal, Total: true},
	}}

	p, ok := r.Period("2023")
	if !ok {
		t.Fatal("2023 not found")
	}
	if _, ok := p.Bucket(LabelAll); !ok {
		t.Error("All bucket not found")
	}
	if _, ok := p.Bucket(LabelWalk); ok {
		t.Error("unexpected Walk bucket")
	}
	if _, ok := r.Period("1999"); ok {
		t.Error("unexpected period 1999")
	}
}

func TestRunMetricsStages(t *testing.T) {
	m := &RunMetrics{StartTime: time.Now()}
	done := m.StartStage("ingestion")
	done(12)
	m.Complete()

	if len(m.Stages) != 1 || m.Stages[0].StageName != "ingestion" || m.Stages[0].RecordsProcessed != 12 {
		t.Fatalf("unexpected stages %+v", m.Stages)
	}
	if m.Elapsed() < 0 || m.EndTime.Before(m.StartTime) {
		t.Errorf("bad timing: %v", m.Elapsed())
	}
}

func TestNewStatBundle(t *testing.T) {
	st := NewStatBundle()
	if st.HasPace() || st.FastestPace != UnsetFastest || st.SlowestPace != UnsetSlowest {
		t.Fatalf("unexpected empty bundle %+v", st)
	}
	if !st.DistanceSum.IsZero() {
		t.Error("expected zero distance")
	}
	if (Export{}).Enabled() || !(Export{DB: "x.db"}).Enabled() {
		t.Error("Export.Enabled is wrong")
	}
}
