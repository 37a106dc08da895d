package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "salesnav-etl/docs"
	"salesnav-etl/internal/api/handler"
	"salesnav-etl/pkg/router"
)

func RegisterRoutes(r *router.Router) {
	r.POST("/api/v1/runs", handler.CreateRun)
	r.GET("/api/v1/runs", handler.ListRuns)
	// More specific routes first
	r.GET("/api/v1/runs/*/errors", handler.GetRunErrors)
	r.GET("/api/v1/runs/*/summary", handler.GetRunSummary)
	r.GET("/api/v1/download/*", handler.DownloadOutput)
	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
	// Generic run route last
	r.GET("/api/v1/runs/*", handler.GetRun)
}
