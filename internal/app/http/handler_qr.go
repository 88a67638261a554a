package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// QR is the poll-variant status endpoint. The UI re-polls it while pairing;
// every call returns an independent snapshot.
func (h *Handler) QR(c *gin.Context) {
	out, err := h.statusUC.Execute(c.Request.Context(), h.sessionOrDefault(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, QRResponse{Success: false, Status: "error", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, QRResponse{
		Success: true,
		Status:  out.Status,
		QR:      out.QR,
		Message: out.Message,
	})
}
