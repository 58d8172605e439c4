package auth

import (
	"api/repository"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to judge authentication
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup, store repository.Store) {
	h := &Handler{store: store}

	r.POST("/login", h.Login)
}
