package handlers

import (
	"io"
	"log"

	"marcenaria_gestao/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// ChangeSubscriber is the part of the event hub the stream needs.
type ChangeSubscriber interface {
	Subscribe() chan entities.ChangeEvent
	Unsubscribe(ch chan entities.ChangeEvent)
}

type EventsHandler struct {
	hub ChangeSubscriber
}

func NewEventsHandler(hub ChangeSubscriber) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// StreamChanges godoc
// @Summary Server-sent stream of store changes
// @Tags events
// @Produce text/event-stream
// @Success 200 {object} entities.ChangeEvent
// @Router /events [get]
func (h *EventsHandler) StreamChanges(c *gin.Context) {
	ch := h.hub.Subscribe()
	defer h.hub.Unsubscribe(ch)

	log.Printf("[events][handler] stream opened remote=%s", c.ClientIP())
	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("change", ev)
			return true
		}
	})
	log.Printf("[events][handler] stream closed remote=%s", c.ClientIP())
}
