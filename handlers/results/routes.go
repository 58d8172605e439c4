package results

import (
	"api/repository"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the tabulation routes
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup, store repository.Store) {
	h := &Handler{store: store}

	r.GET("/results", h.GetResults)
}
