package model

// Column labels used by the default report layout
const (
	LabelRun   = "Run"
	LabelWalk  = "Walk"
	LabelCycle = "Cycle"
	LabelOther = "Other"
	LabelAll   = "All"

	LabelTotal = "Total"
)

// Bucket is the statistics for one column of one period
type Bucket struct {
	Label string     `json:"label"`
	Stats StatBundle `json:"stats"`
}

// Period is one block of the report: a single year or the total range
type Period struct {
	Label   string   `json:"label"`
	Year    int      `json:"year,omitempty"`
	Total   bool     `json:"total"`
	Buckets []Bucket `json:"buckets"`
}

// Bucket returns the bucket with the given column label.
func (p *Period) Bucket(label string) (Bucket, bool) {
	for _, b := range p.Buckets {
		if b.Label == label {
			return b, true
		}
	}
	return Bucket{}, false
}

// Duplicate is a pair of consecutive identical input rows
type Duplicate struct {
	Line         int           `json:"line"`
	PreviousLine int           `json:"previous_line"`
	Row          GenericRecord `json:"row"`
}

// Report is the full set of per-year and total statistics
type Report struct {
	MinYear    int         `json:"min_year"`
	MaxYear    int         `json:"max_year"`
	Columns    []string    `json:"columns"`
	Periods    []Period    `json:"periods"`
	Duplicates []Duplicate `json:"duplicates"`
}

// Period looks a period up by label ("2023", "Total").
func (r *Report) Period(label string) (*Period, bool) {
	for i := range r.Periods {
		if r.Periods[i].Label == label {
			return &r.Periods[i], true
		}
	}
	return nil, false
}

// Export defines export targets
type Export struct {
	File      string `json:"file" mapstructure:"export"`          // e.g. stats.csv, stats.json
	DB        string `json:"db" mapstructure:"export-db"`         // sqlite file
	OutputDir string `json:"outputDir" mapstructure:"output-dir"` // optional per-run directory root
}

// Enabled reports whether any export target is configured.
func (e Export) Enabled() bool {
	return e.File != "" || e.DB != ""
}
