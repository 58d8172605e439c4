package bootstrap

import (
	"net/http"
	"strconv"

	"api/services"
	"api/utils/apperrors"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// InitJudge returns the data a judge's scoring form needs
// @Summary Initialization data for a judge
// @Description Returns all categories (by display order), all contestants (by number), and the judge's previously submitted scores. A non-numeric judge id yields an empty score set, not an error.
// @Tags Init
// @Produce json
// @Param judgeId path string true "Judge ID"
// @Success 200 {object} services.BootstrapData
// @Failure 500 {object} map[string]string
// @Router /init/{judgeId} [get]
func (h *Handler) InitJudge(c *gin.Context) {
	// An unparsable judge id still gets categories and contestants, the
	// score filter is simply skipped.
	var judgeID *int
	if id, err := strconv.Atoi(c.Param("judgeId")); err == nil {
		judgeID = &id
	}

	data, err := services.GetBootstrapData(h.store, judgeID)
	if err != nil {
		response.Error(c, apperrors.Status(err), apperrors.Message(err))
		return
	}

	c.JSON(http.StatusOK, data)
}

// InitAdmin returns the data the admin dashboard needs
// @Summary Initialization data for the admin view
// @Description Returns all categories and contestants without a score filter
// @Tags Init
// @Produce json
// @Success 200 {object} AdminInitResponse
// @Failure 500 {object} map[string]string
// @Router /init/admin [get]
func (h *Handler) InitAdmin(c *gin.Context) {
	data, err := services.GetBootstrapData(h.store, nil)
	if err != nil {
		response.Error(c, apperrors.Status(err), apperrors.Message(err))
		return
	}

	c.JSON(http.StatusOK, AdminInitResponse{
		Categories:  data.Categories,
		Contestants: data.Contestants,
	})
}
