package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lanavaja/barber-platform/internal/assistant"
	"github.com/lanavaja/barber-platform/internal/httperr"
	"github.com/lanavaja/barber-platform/internal/middleware"
)

type AssistantHandler struct {
	assistant *assistant.Assistant
	log       *zap.Logger
}

// NewAssistantHandler accepts a nil assistant; chat then responds 503
// when no API key is configured.
func NewAssistantHandler(a *assistant.Assistant, log *zap.Logger) *AssistantHandler {
	return &AssistantHandler{assistant: a, log: log}
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *AssistantHandler) Chat(c *gin.Context) {
	if h.assistant == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"code":    "assistant_unavailable",
			"message": "El asistente no está disponible.",
		})
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	reply, err := h.assistant.Chat(c.Request.Context(), userID, req.Message)
	if err != nil {
		h.log.Error("assistant chat failed", zap.Error(err))
		httperr.Internal(c, "assistant_error", "El asistente no pudo responder.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
