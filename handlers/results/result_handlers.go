package results

import (
	"net/http"

	"api/repository"
	"api/services"
	"api/utils/apperrors"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// Handler holds the injected store for the results endpoint
type Handler struct {
	store repository.Store
}

// GetResults returns the ranked leaderboard
// @Summary Tabulated results
// @Description Returns one result group per (contestant, category) pair with at least one score, each with a per-judge breakdown and accumulated total, ordered by accumulated total descending.
// @Tags Results
// @Produce json
// @Success 200 {array} services.ResultGroup
// @Failure 500 {object} map[string]string
// @Router /results [get]
func (h *Handler) GetResults(c *gin.Context) {
	groups, err := services.GetResults(h.store)
	if err != nil {
		response.Error(c, apperrors.Status(err), apperrors.Message(err))
		return
	}

	c.JSON(http.StatusOK, groups)
}
