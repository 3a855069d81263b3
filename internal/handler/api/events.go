package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-bot/internal/conversation"
	reqdto "booking-bot/internal/handler/dto/request"
)

// EventsHandler is the webhook endpoint the chat transport posts inbound
// messages to. The engine's reply travels back in the HTTP response, the
// way messenger webhook APIs answer inline.
type EventsHandler struct {
	engine *conversation.Engine
}

func NewEventsHandler(engine *conversation.Engine) *EventsHandler {
	return &EventsHandler{engine: engine}
}

func (h *EventsHandler) HandleEvent(c *gin.Context) {
	var req reqdto.InboundEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	ev := conversation.Event{
		UserID: req.UserID,
		Kind:   conversation.EventKind(req.Type),
		Text:   req.Text,
		Token:  req.Token,
	}

	reply := h.engine.Handle(c.Request.Context(), ev)
	c.JSON(http.StatusOK, reply)
}
