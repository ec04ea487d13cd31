package model

import "time"

// StageMetrics represents metrics for a specific pipeline stage
type StageMetrics struct {
	StageName        string        `json:"stage_name"`
	StartTime        time.Time     `json:"start_time"`
	EndTime          time.Time     `json:"end_time"`
	Duration         time.Duration `json:"duration"`
	RecordsProcessed int           `json:"records_processed"`
}

// RunMetrics tracks one end-to-end report run
type RunMetrics struct {
	RunID      string         `json:"run_id"`
	Source     string         `json:"source"`
	StartTime  time.Time      `json:"start_time"`
	EndTime    time.Time      `json:"end_time"`
	Rows       int            `json:"rows"`
	Activities int            `json:"activities"`
	Stages     []StageMetrics `json:"stages"`
}

// StartStage records the start of a stage and returns a func that closes it.
func (m *RunMetrics) StartStage(name string) func(records int) {
	start := time.Now()
	return func(records int) {
		end := time.Now()
		m.Stages = append(m.Stages, StageMetrics{
			StageName:        name,
			StartTime:        start,
			EndTime:          end,
			Duration:         end.Sub(start),
			RecordsProcessed: records,
		})
	}
}

// Complete stamps the end time.
func (m *RunMetrics) Complete() {
	m.EndTime = time.Now()
}

// Elapsed is the wall time of the run so far.
func (m *RunMetrics) Elapsed() time.Duration {
	if m.EndTime.IsZero() {
		return time.Since(m.StartTime)
	}
	return m.EndTime.Sub(m.StartTime)
}
