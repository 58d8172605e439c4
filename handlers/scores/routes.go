package scores

import (
	"api/repository"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the score submission routes
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup, store repository.Store) {
	h := &Handler{store: store}

	r.POST("/score", h.SubmitScore)
}
