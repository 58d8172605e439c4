package routes

import (
	"api/handlers/auth"
	"api/handlers/bootstrap"
	"api/handlers/results"
	"api/handlers/scores"
	"api/middleware"
	"api/repository"

	"github.com/gin-gonic/gin"
)

// Register wires all endpoints onto the /api group
func Register(r *gin.Engine, store repository.Store) {
	api := r.Group("/api")

	api.Use(middleware.RequestID())
	api.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(600, 100) // 600 requests per minute, 100 burst
	api.Use(middleware.RateLimiterMiddleware(rateLimiter))

	auth.RegisterRoutes(api, store)
	bootstrap.RegisterRoutes(api, store)
	scores.RegisterRoutes(api, store)
	results.RegisterRoutes(api, store)

	RegisterHealthRoutes(api, store)
	RegisterMetricsRoutes(api)
}
