package auth

import (
	"net/http"

	"api/utils/apperrors"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// Login authenticates a judge by PIN
// @Summary Judge login
// @Description Authenticate a judge with their PIN. The PIN is the sole credential; no session or token is issued.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Judge PIN"
// @Success 200 {object} models.Judge
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	judge, err := h.store.FindJudgeByPin(req.Pin)
	if err != nil {
		response.Error(c, apperrors.Status(err), apperrors.Message(err))
		return
	}

	c.JSON(http.StatusOK, judge)
}
