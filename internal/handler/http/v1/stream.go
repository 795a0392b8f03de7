package v1

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/safety_reporting_system/internal/realtime"
)

const streamHeartbeat = 25 * time.Second

// @Summary Realtime change feed
// @Description Server-Sent Events with INSERT/UPDATE changes of incidents or alerts.
// @Tags Realtime
// @Produce text/event-stream
// @Security BearerAuth
// @Param resource path string true "incidents or alerts"
// @Success 200 {object} realtime.Event
// @Failure 400 {object} ErrorResponse "Unknown resource"
// @Router /stream/{resource} [get]
func (h *Handler) stream(c *gin.Context) {
	resource := c.Param("resource")
	log := h.logger.WithField("method", "stream").WithField("resource", resource)

	if !realtime.IsKnownResource(resource) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "unknown resource " + resource,
		})
		return
	}

	ctx := c.Request.Context()
	events, unsubscribe, err := h.subscriber.Subscribe(ctx, resource)
	if err != nil {
		respondError(c, log, err)
		return
	}
	defer func() {
		if err := unsubscribe(); err != nil {
			log.WithError(err).Warn("Failed to close realtime subscription")
		}
	}()
	log.Info("Realtime subscriber connected")

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	c.Stream(func(_ io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(strings.ToLower(event.Type), event)
			return true
		case <-heartbeat.C:
			c.SSEvent("ping", gin.H{"ts": time.Now().UTC()})
			return true
		}
	})
	log.Info("Realtime subscriber disconnected")
}
