package handler

import (
	"enrollment-dispatch/internal/adapter/http/middleware"
	"enrollment-dispatch/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Scheduler      ports.Scheduler
	Processor      ports.RetryProcessor
	Endpoints      ports.WebhookEndpointRepository
	Results        ports.ResultCache
	BatchLimit     int
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/healthz", HealthCheck(deps.Scheduler.Backend, deps.HealthCheckers...))

	opsHandler := NewOpsHandler(deps.Scheduler, deps.Processor, deps.Endpoints, deps.Results, deps.BatchLimit)
	ops := r.Group("/ops")
	{
		ops.POST("/schedule", opsHandler.Schedule)
		ops.DELETE("/schedule/groups/:group", opsHandler.CancelGroup)
		ops.GET("/actions/:id/result", opsHandler.ActionResult)
		ops.POST("/worker/run", opsHandler.RunWorker)
		ops.GET("/webhooks/:id/stats", opsHandler.WebhookStats)
	}

	return r
}
