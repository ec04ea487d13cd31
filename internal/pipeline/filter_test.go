package pipeline

import (
	"testing"
	"time"

	"go-activity-stats/internal/model"
)

func TestPredicates(t *testing.T) {
	run := model.Activity{Type: "Running", Date: time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC)}
	swim := model.Activity{Type: "Swimming", Date: time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC)}
	walk := model.Activity{Type: "Walking", Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)}

	tests := []struct {
		name string
		p    Predicate
		a    model.Activity
		want bool
	}{
		{"all", All{}, swim, true},
		{"category is", CategoryIs(model.Running), run, true},
		{"category is other type", CategoryIs(model.Running), walk, false},
		{"category in", CategoryIn{model.Walking, model.Cycling}, walk, true},
		{"category in miss", CategoryIn{model.Walking, model.Cycling}, run, false},
		{"not in known", CategoryNotIn(KnownCategories), swim, true},
		{"not in known for run", CategoryNotIn(KnownCategories), run, false},
		{"year is", YearIs(2021), run, true},
		{"year is miss", YearIs(2021), swim, false},
		{"year between inclusive low", YearBetween{From: 2021, To: 2022}, run, true},
		{"year between inclusive high", YearBetween{From: 2021, To: 2022}, swim, true},
		{"year between outside", YearBetween{From: 2021, To: 2022}, walk, false},
		{"and", And{YearIs(2023), CategoryIs(model.Walking)}, walk, true},
		{"and miss", And{YearIs(2022), CategoryIs(model.Walking)}, walk, false},
		{"empty and", And{}, walk, true},
		{"or", Or{CategoryIs(model.Running), YearIs(2022)}, swim, true},
		{"empty or", Or{}, swim, false},
		{"not", Not{CategoryIs(model.Running)}, run, false},
		{"func", PredicateFunc(func(a *model.Activity) bool { return a.Type == "Swimming" }), swim, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.a
			if got := tt.p.Match(&a); got != tt.want {
				t.Errorf("Match = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultColumns(t *testing.T) {
	cols := DefaultColumns()
	want := []string{model.LabelRun, model.LabelWalk, model.LabelCycle, model.LabelOther, model.LabelAll}
	if len(cols) != len(want) {
		t.Fatalf("got %d columns, want %d", len(cols), len(want))
	}
	for i, c := range cols {
		if c.Label != want[i] {
			t.Errorf("column %d = %q, want %q", i, c.Label, want[i])
		}
	}

	other := model.Activity{Type: "Rowing"}
	if !cols[3].Filter.Match(&other) {
		t.Error("expected Other column to match an unknown type")
	}
}

func TestSelectColumns(t *testing.T) {
	if got := SelectColumns(nil); len(got) != 5 {
		t.Fatalf("empty selection: got %d columns, want 5", len(got))
	}

	got := SelectColumns([]string{model.LabelAll, model.LabelRun})
	if len(got) != 2 || got[0].Label != model.LabelRun || got[1].Label != model.LabelAll {
		t.Fatalf("unexpected selection: %+v", got)
	}
}
