package http

import (
	"github.com/gin-gonic/gin"

	"github.com/hostelhub/notify-gateway/internal/infra/wa"
)

// EventsStream is the push-variant relay: an SSE stream that emits the
// current snapshot immediately and one event per lifecycle transition
// afterwards. No history is replayed; a client reconnecting mid-session sees
// only the latest state.
func (h *Handler) EventsStream(c *gin.Context) {
	session := c.Param("session")
	if session == "" {
		c.JSON(400, gin.H{"error": "session param is required"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Writer.Flush()

	initial, events, cancel := h.eventsUC.Subscribe(session)
	defer cancel()

	emit := func(evt wa.RelayEvent) {
		c.SSEvent(evt.Name, SessionEventPayload{
			Status: string(evt.Snapshot.Status),
			QR:     evt.Snapshot.QR,
			Detail: evt.Detail,
		})
		c.Writer.Flush()
	}

	emit(initial)

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-events:
			if !ok {
				return
			}
			emit(evt)
		}
	}
}
