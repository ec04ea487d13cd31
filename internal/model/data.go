package model

import "time"

// ExportResult represents the result of an export operation
type ExportResult struct {
	RunID       string    `json:"run_id"`
	Type        string    `json:"type"` // "csv", "json", "database"
	Path        string    `json:"path"` // file path or sqlite file
	RecordCount int       `json:"record_count"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// RunSummary is a stored report run as listed from the database
type RunSummary struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	MinYear     int       `json:"min_year"`
	MaxYear     int       `json:"max_year"`
	Activities  int       `json:"activities"`
	BucketCount int       `json:"bucket_count"`
	CreatedAt   time.Time `json:"created_at"`
}
