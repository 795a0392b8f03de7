package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Analytics summary
// @Description Totals, weekly trend, risk areas and high-risk incidents for the last 30 days.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AnalyticsSummary
// @Router /analytics/summary [get]
func (h *Handler) analyticsSummary(c *gin.Context) {
	log := h.logger.WithField("method", "analyticsSummary")

	summary, err := h.analyticsService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Response time statistics
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ResponseTimeStats
// @Router /analytics/response-times [get]
func (h *Handler) responseTimes(c *gin.Context) {
	log := h.logger.WithField("method", "responseTimes")

	stats, err := h.analyticsService.ResponseTimes(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
