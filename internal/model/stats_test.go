package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestStatBundleJSON_NoPace(t *testing.T) {
	st := NewStatBundle()
	st.Count = 1

	data, err := json.Marshal(st)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	for _, field := range []string{`"avg_pace":null`, `"fastest_pace":null`, `"slowest_pace":null`} {
		if !strings.Contains(out, field) {
			t.Errorf("expected %s in %s", field, out)
		}
	}
	if strings.Contains(out, "9223372036854775807") {
		t.Errorf("unset fastest pace leaked into JSON: %s", out)
	}
	if !strings.Contains(out, `"count":1`) || !strings.Contains(out, `"distance_sum_mi":"0"`) {
		t.Errorf("other fields missing: %s", out)
	}
}

func TestStatBundleJSON_WithPace(t *testing.T) {
	st := NewStatBundle()
	st.PaceSamples = 2
	st.PaceSum = 18 * time.Minute
	st.AvgPace = 9 * time.Minute
	st.FastestPace = 8 * time.Minute
	st.SlowestPace = 10 * time.Minute

	data, err := json.Marshal(Bucket{Label: LabelRun, Stats: st})
	if err != nil {
		t.Fatal(err)
	}

	var got struct {
		Stats struct {
			PaceSamples int            `json:"pace_samples"`
			AvgPace     *time.Duration `json:"avg_pace"`
			FastestPace *time.Duration `json:"fastest_pace"`
			SlowestPace *time.Duration `json:"slowest_pace"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	s := got.Stats
	if s.PaceSamples != 2 || s.AvgPace == nil || *s.AvgPace != 9*time.Minute ||
		s.FastestPace == nil || *s.FastestPace != 8*time.Minute ||
		s.SlowestPace == nil || *s.SlowestPace != 10*time.Minute {
		t.Fatalf("unexpected pace fields in %s", data)
	}
}
