package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hostelhub/notify-gateway/internal/app/usecase"
	"github.com/hostelhub/notify-gateway/internal/domain/notify"
)

// Send delivers one message. The admin UI calls this per recipient during a
// manual resend, so failures come back in the body rather than as bare
// status codes.
func (h *Handler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, SendResponse{Success: false, Error: "invalid json: " + err.Error()})
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Number == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, SendResponse{Success: false, Error: "number and message are required"})
		return
	}

	out, err := h.sendUC.Execute(c.Request.Context(), usecase.SendTextInput{
		Session: h.sessionOrDefault(c),
		Number:  req.Number,
		Message: req.Message,
	})
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, notify.ErrNotConnected) {
			status = http.StatusConflict
		}
		c.JSON(status, SendResponse{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SendResponse{Success: true, MessageID: out.MessageID})
}
