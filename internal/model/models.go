package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// GenericRecord is a single CSV row keyed by its header
type GenericRecord map[string]string

// Equal reports whether two rows hold the same fields with the same values
func (r GenericRecord) Equal(other GenericRecord) bool {
	if len(r) != len(other) {
		return false
	}
	for k, v := range r {
		ov, ok := other[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// SourceRow is a record together with the file line it started on.
// Raw keeps the values exactly as read once Record has been normalized.
type SourceRow struct {
	Line   int
	Record GenericRecord
	Raw    GenericRecord
}

// Original returns the row as read, falling back to Record before normalization.
func (r SourceRow) Original() GenericRecord {
	if r.Raw != nil {
		return r.Raw
	}
	return r.Record
}

// Category is the discrete type of an exercise session
type Category string

const (
	Running Category = "Running"
	Walking Category = "Walking"
	Cycling Category = "Cycling"
	Other   Category = "Other"
)

// CategoryOf maps a raw activity type onto one of the known categories.
// Anything that is not Running, Walking or Cycling is Other.
func CategoryOf(activityType string) Category {
	switch c := Category(activityType); c {
	case Running, Walking, Cycling:
		return c
	default:
		return Other
	}
}

// Pace is an optional per-mile pace. Valid is false when the export left the
// field empty.
type Pace struct {
	Value time.Duration `json:"value"`
	Valid bool          `json:"valid"`
}

// Activity is one exercise session read from the export
type Activity struct {
	Line     int                 `json:"line"`
	Date     time.Time           `json:"date"`
	Type     string              `json:"type"`
	Distance decimal.Decimal     `json:"distance_mi"`
	Duration time.Duration       `json:"duration"`
	Pace     Pace                `json:"pace"`
	Climb    decimal.NullDecimal `json:"climb_ft"`
	Calories decimal.Decimal     `json:"calories"`
	GPXFile  string              `json:"gpx_file,omitempty"`
	Raw      GenericRecord       `json:"-"`
}

// Category returns the activity's category, folding unknown types into Other.
func (a *Activity) Category() Category {
	return CategoryOf(a.Type)
}

// Outdoor reports whether the activity has a GPS track attached.
func (a *Activity) Outdoor() bool {
	return a.GPXFile != ""
}
