package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Ask the safety assistant
// @Tags Chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param message body ChatRequest true "Message"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Router /chat [post]
func (h *Handler) chat(c *gin.Context) {
	var input ChatRequest
	log := h.logger.WithField("method", "chat")

	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c, log, err)
		return
	}
	if err := h.validate.Struct(input); err != nil {
		respondValidation(c, log, err)
		return
	}

	reply, err := h.chatService.Send(c.Request.Context(), actorFromContext(c), input.Message)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ChatResponse{Reply: reply.Content, CreatedAt: reply.CreatedAt})
}

// @Summary Chat history
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ChatMessage
// @Router /chat/history [get]
func (h *Handler) chatHistory(c *gin.Context) {
	log := h.logger.WithField("method", "chatHistory")

	history, err := h.chatService.History(c.Request.Context(), actorFromContext(c))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// @Summary Start a new chat session
// @Tags Chat
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /chat/history [delete]
func (h *Handler) clearChat(c *gin.Context) {
	log := h.logger.WithField("method", "clearChat")

	if err := h.chatService.Clear(c.Request.Context(), actorFromContext(c)); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
