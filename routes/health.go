package routes

import (
	"net/http"

	"api/repository"

	"github.com/gin-gonic/gin"
)

// healthCheck reports liveness and database reachability
// @Summary Health check
// @Description Returns OK when the service and its database connection are alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheck(store repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "degraded",
				"database": "unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "OK",
			"database": "PostgreSQL",
		})
	}
}

// RegisterHealthRoutes registers the liveness endpoint
func RegisterHealthRoutes(r *gin.RouterGroup, store repository.Store) {
	r.GET("/health", healthCheck(store))
}
