package pipeline

import (
	"time"

	"go-activity-stats/internal/model"
)

// ------------------- Aggregation -------------------

// Scan walks every activity once, in order, and accumulates statistics for the
// ones the predicate selects. The input is never modified.
func Scan(activities []model.Activity, p Predicate) model.StatBundle {
	if p == nil {
		p = All{}
	}

	result := model.NewStatBundle()
	for i := range activities {
		a := &activities[i]
		if !p.Match(a) {
			continue
		}
		accumulate(&result, a)
	}

	if result.PaceSamples > 0 {
		result.AvgPace = result.PaceSum / time.Duration(result.PaceSamples)
	}
	return result
}

// accumulate folds a single selected activity into the bundle
func accumulate(result *model.StatBundle, a *model.Activity) {
	result.Count++

	result.DistanceSum = result.DistanceSum.Add(a.Distance)
	if a.Distance.GreaterThan(result.DistanceMax) {
		result.DistanceMax = a.Distance
	}

	result.DurationSum += a.Duration
	if a.Duration > result.DurationMax {
		result.DurationMax = a.Duration
	}

	if a.Climb.Valid {
		result.ClimbSum = result.ClimbSum.Add(a.Climb.Decimal)
		if a.Climb.Decimal.GreaterThan(result.ClimbMax) {
			result.ClimbMax = a.Climb.Decimal
		}
	}

	result.CaloriesSum = result.CaloriesSum.Add(a.Calories)
	if a.Calories.GreaterThan(result.CaloriesMax) {
		result.CaloriesMax = a.Calories
	}

	if a.Outdoor() {
		result.OutdoorCount++
	}

	if a.Pace.Valid {
		result.PaceSamples++
		result.PaceSum += a.Pace.Value
		if a.Pace.Value < result.FastestPace {
			result.FastestPace = a.Pace.Value
		}
		if a.Pace.Value > result.SlowestPace {
			result.SlowestPace = a.Pace.Value
		}
	}
}
