package handler

import (
	"net/http"

	"catering-service/internal/bot"
	"catering-service/pkg/logger"
	"catering-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// WebhookHandler is the chat gateway's entry point: one inbound chat event
// in, the rendered replies and operator notifications out.
type WebhookHandler struct {
	dispatcher *bot.Dispatcher
}

func NewWebhookHandler(dispatcher *bot.Dispatcher) *WebhookHandler {
	return &WebhookHandler{dispatcher: dispatcher}
}

// HandleEvent processes one chat event
func (h *WebhookHandler) HandleEvent(c echo.Context) error {
	log := logger.FromContext(c)

	var ev bot.Event
	if err := c.Bind(&ev); err != nil {
		log.Error("Invalid chat event", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid chat event"})
	}
	if ev.UserID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id is required"})
	}
	if ev.Kind != bot.EventMessage && ev.Kind != bot.EventCallback {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "kind must be message or callback"})
	}

	prometheus.RecordChatEvent(string(ev.Kind))

	result, err := h.dispatcher.Handle(ev)
	if err != nil {
		// Nothing committed; the gateway shows a generic failure and the
		// user may safely retry.
		log.Error("Failed to process chat event",
			zap.Int64("user_id", ev.UserID),
			zap.String("kind", string(ev.Kind)),
			zap.String("data", ev.Data),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to process event"})
	}

	return c.JSON(http.StatusOK, result)
}
