package main

import (
	"salesnav-etl/internal/api"
	"salesnav-etl/internal/store"
	"salesnav-etl/pkg/router"
)

// @title Sales Navigator ETL API
// @version 1.0
// @description HTTP API for submitting and inspecting JSON export processing runs.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Init run history DB
	if err := store.InitDB("salesnav.db"); err != nil {
		panic(err)
	}

	// Create router
	r := router.New()

	// Register API routes
	api.RegisterRoutes(r)

	// Start server
	r.Start(":8080")
}
