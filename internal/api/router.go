package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "go-activity-stats/docs"
	"go-activity-stats/internal/api/handler"
	"go-activity-stats/pkg/router"
)

func RegisterRoutes(r *router.Router, h *handler.ReportHandler) {
	r.GET("/api/v1/health", h.Health)
	r.GET("/api/v1/report", h.GetReport)
	// Exact routes are tried before wildcard ones
	r.GET("/api/v1/report/duplicates", h.GetDuplicates)
	r.GET("/api/v1/report/periods/*", h.GetPeriod)
	r.GET("/api/v1/runs", h.ListRuns)
	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))))
}
