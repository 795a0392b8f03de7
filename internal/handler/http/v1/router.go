package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	secured := api.Group("")
	secured.Use(JWTAuthMiddleware(h.verifier, h.profileService, h.logger))

	secured.GET("/me", h.me)

	incidents := secured.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/nearby", h.nearbyIncidents)
		incidents.POST("/analyze", h.analyzeIncident)
		incidents.GET("/:id", h.getIncident)
		incidents.GET("/:id/logs", h.incidentLogs)
		incidents.PATCH("/:id/status", h.updateIncidentStatus)
	}

	alerts := secured.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.POST("", h.createAlert)
		alerts.POST("/:id/dismiss", h.dismissAlert)
	}

	analytics := secured.Group("/analytics")
	{
		analytics.GET("/summary", h.analyticsSummary)
		analytics.GET("/response-times", h.responseTimes)
	}

	chat := secured.Group("/chat")
	{
		chat.POST("", h.chat)
		chat.GET("/history", h.chatHistory)
		chat.DELETE("/history", h.clearChat)
	}

	secured.GET("/stream/:resource", h.stream)
}
