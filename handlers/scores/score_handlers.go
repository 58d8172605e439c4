package scores

import (
	"net/http"

	"api/services"
	"api/utils/apperrors"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// SubmitScore upserts a judge's score for a contestant in a category
// @Summary Submit a score
// @Description Insert or update the unique score for a (judge, contestant, category) triple. The total is computed server-side as the sum of the criteria scores.
// @Tags Scores
// @Accept json
// @Produce json
// @Param request body SubmitScoreRequest true "Score submission"
// @Success 200 {object} models.Score
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /score [post]
func (h *Handler) SubmitScore(c *gin.Context) {
	var req SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	score, err := services.SubmitScore(h.store, req.JudgeID, req.ContestantID, req.CategoryID, req.CriteriaScores)
	if err != nil {
		response.Error(c, apperrors.Status(err), apperrors.Message(err))
		return
	}

	c.JSON(http.StatusOK, score)
}
