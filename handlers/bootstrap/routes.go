package bootstrap

import (
	"api/repository"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the client initialization routes
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup, store repository.Store) {
	h := &Handler{store: store}

	init := r.Group("/init")
	{
		init.GET("/admin", h.InitAdmin)
		init.GET("/:judgeId", h.InitJudge)
	}
}
