package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary List alerts
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only active alerts" default(true)
// @Success 200 {array} models.Alert
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")
	active := c.DefaultQuery("active", "true") != "false"

	alerts, err := h.alertService.ListAlerts(c.Request.Context(), active)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// @Summary Create alert
// @Description Broadcast a manual alert. Allowed for officer, leader and admin roles.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param alert body CreateAlertRequest true "Alert"
// @Success 201 {object} models.Alert
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /alerts [post]
func (h *Handler) createAlert(c *gin.Context) {
	var input CreateAlertRequest
	log := h.logger.WithField("method", "createAlert")

	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c, log, err)
		return
	}
	if err := h.validate.Struct(input); err != nil {
		respondValidation(c, log, err)
		return
	}

	alert := DTOToAlertModel(input)
	if err := h.alertService.CreateAlert(c.Request.Context(), actorFromContext(c), alert); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, alert)
}

// @Summary Dismiss alert
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} models.Alert
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Alert not found"
// @Router /alerts/{id}/dismiss [post]
func (h *Handler) dismissAlert(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "dismissAlert").WithField("id", id)

	alert, err := h.alertService.DismissAlert(c.Request.Context(), actorFromContext(c), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}
