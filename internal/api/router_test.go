package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"go-activity-stats/internal/api/handler"
	"go-activity-stats/internal/model"
	"go-activity-stats/pkg/router"
)

func TestRegisterRoutes(t *testing.T) {
	report := &model.Report{Periods: []model.Period{{Label: model.LabelTotal, Total: true}}}
	r := router.New(zerolog.Nop())
	RegisterRoutes(r, handler.NewReportHandler(report, &model.RunMetrics{}, nil))

	tests := []struct {
		path   string
		status int
	}{
		{"/api/v1/health", http.StatusOK},
		{"/api/v1/report", http.StatusOK},
		{"/api/v1/report/duplicates", http.StatusOK},
		{"/api/v1/report/periods/Total", http.StatusOK},
		{"/api/v1/report/periods/2001", http.StatusNotFound},
		{"/api/v1/runs", http.StatusNotFound},
		{"/swagger/doc.json", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}
