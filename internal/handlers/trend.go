package handlers

import (
	"net/http"

	cm "condition_monitor"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Condition trend per category
// @Description  Latest condition of every device, grouped by category, newest first.
// @Tags         trend
// @Produce      json
// @Success      200  {array}   condition_monitor.TrendResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/trend [get]
func (h *Handler) getTrend(c *gin.Context) {
	trends, err := h.services.CurrentTrend(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, "trend_failed", err)
		return
	}
	c.JSON(http.StatusOK, cm.NewTrendResponses(trends))
}
