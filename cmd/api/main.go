package main

import (
	"fmt"
	"log/slog"
	"os"

	"der-feasibility/internal/api/handlers"
	"der-feasibility/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
)

func main() {
	log := slog.New(tint.NewHandler(os.Stderr, nil))

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler())

	financeHandler := handlers.NewFinanceHandler()
	sweepHandler := handlers.NewSweepHandler()
	simulateHandler := handlers.NewSimulateHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/capex", financeHandler.ComputeCapex)
		api.POST("/metrics", financeHandler.ComputeMetrics)
		api.POST("/improvements", financeHandler.AnalyzeImprovements)

		api.POST("/sweep/battery", sweepHandler.SweepBattery)
		api.POST("/sweep/ppa-capex", sweepHandler.SweepPPACapex)

		api.POST("/simulate", simulateHandler.RunSimulation)
		api.GET("/scenarios", handlers.ListScenarios)
		api.GET("/scenarios/:name/chart", simulateHandler.ScenarioChart)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Info("starting API server", "addr", addr)
	if err := router.Run(addr); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
