package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go-activity-stats/internal/model"
)

// RunLister lists stored report runs
type RunLister interface {
	ListRuns(ctx context.Context) ([]model.RunSummary, error)
}

// ReportHandler serves a report computed once at startup
type ReportHandler struct {
	Report  *model.Report
	Metrics *model.RunMetrics
	Runs    RunLister // nil when no database is configured
}

// NewReportHandler wraps an already built report
func NewReportHandler(report *model.Report, metrics *model.RunMetrics, runs RunLister) *ReportHandler {
	return &ReportHandler{Report: report, Metrics: metrics, Runs: runs}
}

// reportResponse is the body of GET /report
type reportResponse struct {
	Metrics *model.RunMetrics `json:"metrics"`
	Report  *model.Report     `json:"report"`
}

// GetReport returns the full report
// @Summary Get report
// @Description Per-year and total statistics for every category column
// @Tags report
// @Produce json
// @Success 200 {object} reportResponse "Report with run metrics"
// @Router /report [get]
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, reportResponse{Metrics: h.Metrics, Report: h.Report})
}

// GetPeriod returns a single period of the report
// @Summary Get report period
// @Description Statistics for one year ("2023") or for the whole range ("Total")
// @Tags report
// @Produce json
// @Param label path string true "Year or Total"
// @Success 200 {object} model.Period "Report period"
// @Failure 400 {object} map[string]interface{} "Missing period label"
// @Failure 404 {object} map[string]interface{} "Period not found"
// @Router /report/periods/{label} [get]
func (h *ReportHandler) GetPeriod(w http.ResponseWriter, r *http.Request) {
	const prefix = "/api/v1/report/periods/"

	label := strings.Trim(strings.TrimPrefix(r.URL.Path, prefix), "/")
	if label == "" {
		writeError(w, http.StatusBadRequest, "Period label is required")
		return
	}

	// Accept "total" as well as "Total"
	if strings.EqualFold(label, model.LabelTotal) {
		label = model.LabelTotal
	}

	period, ok := h.Report.Period(label)
	if !ok {
		writeError(w, http.StatusNotFound, "Period not found: "+label)
		return
	}
	writeJSON(w, http.StatusOK, period)
}

// GetDuplicates returns consecutive duplicate rows found in the input
// @Summary List duplicate rows
// @Tags report
// @Produce json
// @Success 200 {array} model.Duplicate "Duplicate rows"
// @Router /report/duplicates [get]
func (h *ReportHandler) GetDuplicates(w http.ResponseWriter, r *http.Request) {
	dups := h.Report.Duplicates
	if dups == nil {
		dups = []model.Duplicate{}
	}
	writeJSON(w, http.StatusOK, dups)
}

// ListRuns returns report runs stored in the sqlite export
// @Summary List stored runs
// @Tags runs
// @Produce json
// @Success 200 {array} model.RunSummary "Stored runs"
// @Failure 404 {object} map[string]interface{} "No database configured"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs [get]
func (h *ReportHandler) ListRuns(w http.ResponseWriter, r *http.Request) {
	if h.Runs == nil {
		writeError(w, http.StatusNotFound, "No export database configured")
		return
	}

	runs, err := h.Runs.ListRuns(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch runs")
		return
	}
	if runs == nil {
		runs = []model.RunSummary{}
	}
	writeJSON(w, http.StatusOK, runs)
}

// Health reports liveness
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "ok"
// @Router /health [get]
func (h *ReportHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{"error": msg})
}
