package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go-activity-stats/internal/model"
)

func writeExport(t *testing.T, lines ...string) string {
	t.Helper()
	data := testHeader
	for _, l := range lines {
		data += l + "\n"
	}
	path := filepath.Join(t.TempDir(), "cardioActivities.csv")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	path := writeExport(t,
		"2022-03-01 07:00:00,Running,3.0,30:00,10:00,120,300,a.gpx",
		"2022-03-01 07:00:00,Running,3.0,30:00,10:00,120,300,a.gpx",
		"2023-04-02 12:00:00,Walking,1.0,20:00,,,90,",
	)
	dbPath := filepath.Join(t.TempDir(), "stats.db")

	result, err := Run(context.Background(), Job{
		Source:  path,
		Options: Options{FromYear: 2022, ToYear: 2023},
		Export:  model.Export{DB: dbPath},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	m := result.Metrics
	if m.RunID == "" || m.Rows != 3 || m.Activities != 3 {
		t.Errorf("unexpected metrics %+v", m)
	}
	if m.EndTime.IsZero() {
		t.Error("run was not completed")
	}
	wantStages := []string{"ingestion", "transformation", "validation", "aggregation", "export"}
	if len(m.Stages) != len(wantStages) {
		t.Fatalf("got %d stages, want %d", len(m.Stages), len(wantStages))
	}
	for i, s := range m.Stages {
		if s.StageName != wantStages[i] {
			t.Errorf("stage %d = %q, want %q", i, s.StageName, wantStages[i])
		}
	}

	// Duplicates are reported but still counted
	if len(result.Report.Duplicates) != 1 {
		t.Errorf("got %d duplicates, want 1", len(result.Report.Duplicates))
	}
	total, _ := result.Report.Period(model.LabelTotal)
	if all, _ := total.Bucket(model.LabelAll); all.Stats.Count != 3 {
		t.Errorf("total count = %d, want 3", all.Stats.Count)
	}

	if len(result.Exports) != 1 || !result.Exports[0].Success {
		t.Fatalf("unexpected exports %+v", result.Exports)
	}
	if result.Exports[0].RecordCount != 15 {
		t.Errorf("stored %d buckets, want 15", result.Exports[0].RecordCount)
	}
}

func TestRun_MalformedRow(t *testing.T) {
	path := writeExport(t,
		"2022-03-01 07:00:00,Running,3.0,30:00,10:00,120,300,a.gpx",
		"2022-03-02 07:00:00,Running,3.0,30:xx,10:00,120,300,a.gpx",
	)

	_, err := Run(context.Background(), Job{Source: path})
	if !errors.Is(err, model.ErrMalformedDuration) {
		t.Fatalf("expected ErrMalformedDuration, got %v", err)
	}
	var fe *model.FieldError
	if !errors.As(err, &fe) || fe.Line != 3 {
		t.Fatalf("expected error on line 3, got %v", err)
	}
}

func TestRun_MissingSource(t *testing.T) {
	if _, err := Run(context.Background(), Job{Source: filepath.Join(t.TempDir(), "missing.csv")}); err == nil {
		t.Fatal("expected error")
	}
}

func TestRun_EmptyExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, []byte(testHeader), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := Run(context.Background(), Job{Source: path, Options: Options{Now: june2023}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Report.MinYear != 2023 || len(result.Report.Periods) != 3 {
		t.Fatalf("unexpected report range %d..%d with %d periods",
			result.Report.MinYear, result.Report.MaxYear, len(result.Report.Periods))
	}
	if result.Exports != nil {
		t.Error("no exports expected without targets")
	}
}
