package model

import (
	"encoding/json"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Pace sentinels used before any paced activity has been seen. Renderers must
// treat them as "no data".
const (
	UnsetFastest time.Duration = math.MaxInt64
	UnsetSlowest time.Duration = 0
)

// StatBundle holds the totals and extrema accumulated by one scan
type StatBundle struct {
	Count        int `json:"count"`
	OutdoorCount int `json:"outdoor_count"`

	DistanceSum decimal.Decimal `json:"distance_sum_mi"`
	DistanceMax decimal.Decimal `json:"distance_max_mi"`

	DurationSum time.Duration `json:"duration_sum"`
	DurationMax time.Duration `json:"duration_max"`

	ClimbSum decimal.Decimal `json:"climb_sum_ft"`
	ClimbMax decimal.Decimal `json:"climb_max_ft"`

	CaloriesSum decimal.Decimal `json:"calories_sum"`
	CaloriesMax decimal.Decimal `json:"calories_max"`

	// Pace figures only cover activities that recorded a pace.
	PaceSamples int           `json:"pace_samples"`
	PaceSum     time.Duration `json:"pace_sum"`
	AvgPace     time.Duration `json:"avg_pace"`
	FastestPace time.Duration `json:"fastest_pace"`
	SlowestPace time.Duration `json:"slowest_pace"`
}

// NewStatBundle returns an empty bundle with the pace sentinels set.
func NewStatBundle() StatBundle {
	return StatBundle{
		DistanceSum: decimal.Zero,
		DistanceMax: decimal.Zero,
		ClimbSum:    decimal.Zero,
		ClimbMax:    decimal.Zero,
		CaloriesSum: decimal.Zero,
		CaloriesMax: decimal.Zero,
		FastestPace: UnsetFastest,
		SlowestPace: UnsetSlowest,
	}
}

// HasPace reports whether any matched activity carried a pace.
func (s StatBundle) HasPace() bool {
	return s.PaceSamples > 0
}

// MarshalJSON writes the pace fields as null when no matched activity carried
// a pace, so the sentinels never leave the process.
func (s StatBundle) MarshalJSON() ([]byte, error) {
	type bundle StatBundle
	out := struct {
		bundle
		AvgPace     *time.Duration `json:"avg_pace"`
		FastestPace *time.Duration `json:"fastest_pace"`
		SlowestPace *time.Duration `json:"slowest_pace"`
	}{bundle: bundle(s)}

	if s.HasPace() {
		out.AvgPace = &s.AvgPace
		out.FastestPace = &s.FastestPace
		out.SlowestPace = &s.SlowestPace
	}
	return json.Marshal(out)
}
