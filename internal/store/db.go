package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"go-activity-stats/internal/model"
	"go-activity-stats/pkg/utils"
)

// Store writes report runs into a sqlite file
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the sqlite file and sets up the schema.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	runTable := `
	CREATE TABLE IF NOT EXISTS report_runs (
		id TEXT PRIMARY KEY,
		source TEXT,
		min_year INTEGER,
		max_year INTEGER,
		activities INTEGER,
		created_at DATETIME
	);
	`
	bucketTable := `
	CREATE TABLE IF NOT EXISTS bucket_stats (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES report_runs(id),
		period TEXT NOT NULL,
		category TEXT NOT NULL,
		count INTEGER,
		outdoor_count INTEGER,
		distance_sum REAL,
		distance_max REAL,
		duration_sum_sec INTEGER,
		duration_max_sec INTEGER,
		climb_sum REAL,
		climb_max REAL,
		calories_sum REAL,
		calories_max REAL,
		pace_samples INTEGER,
		avg_pace_sec INTEGER,
		fastest_pace_sec INTEGER,
		slowest_pace_sec INTEGER
	);
	`

	if _, err := s.db.ExecContext(ctx, runTable); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, bucketTable); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveReport stores one run and all of its buckets in a single transaction.
// It returns the number of bucket rows written.
func (s *Store) SaveReport(ctx context.Context, metrics *model.RunMetrics, report *model.Report) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO report_runs (id, source, min_year, max_year, activities, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		metrics.RunID, metrics.Source, report.MinYear, report.MaxYear, metrics.Activities, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO bucket_stats (
		run_id, period, category, count, outdoor_count,
		distance_sum, distance_max, duration_sum_sec, duration_max_sec,
		climb_sum, climb_max, calories_sum, calories_max,
		pace_samples, avg_pace_sec, fastest_pace_sec, slowest_pace_sec
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare bucket insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for _, p := range report.Periods {
		for _, b := range p.Buckets {
			st := b.Stats
			fastest, slowest := nullPace(st, st.FastestPace), nullPace(st, st.SlowestPace)
			_, err := stmt.ExecContext(ctx,
				metrics.RunID, p.Label, b.Label, st.Count, st.OutdoorCount,
				utils.Float(st.DistanceSum), utils.Float(st.DistanceMax),
				seconds(st.DurationSum), seconds(st.DurationMax),
				utils.Float(st.ClimbSum), utils.Float(st.ClimbMax),
				utils.Float(st.CaloriesSum), utils.Float(st.CaloriesMax),
				st.PaceSamples, nullPace(st, st.AvgPace), fastest, slowest,
			)
			if err != nil {
				return count, fmt.Errorf("failed to insert bucket %s/%s: %w", p.Label, b.Label, err)
			}
			count++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return count, nil
}

// ListRuns returns stored runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]model.RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.source, r.min_year, r.max_year, r.activities, r.created_at, COUNT(b.id)
		FROM report_runs r LEFT JOIN bucket_stats b ON b.run_id = r.id
		GROUP BY r.id
		ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []model.RunSummary
	for rows.Next() {
		var r model.RunSummary
		var createdAt string
		if err := rows.Scan(&r.ID, &r.Source, &r.MinYear, &r.MaxYear, &r.Activities, &createdAt, &r.BucketCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// sqlite hands DATETIME back either as time.Time or as the text the driver wrote.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
}

func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}

// nullPace keeps the sentinels out of the table.
func nullPace(st model.StatBundle, d time.Duration) sql.NullInt64 {
	if !st.HasPace() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: seconds(d), Valid: true}
}
