package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StartSession idempotently ensures a session exists for the given user and
// kicks off pairing when the device is not yet linked.
func (h *Handler) StartSession(c *gin.Context) {
	var req SessionStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json", "detail": err.Error()})
		return
	}
	if req.UserID == "" {
		req.UserID = h.defaultSession
	}

	if err := h.startUC.Execute(c.Request.Context(), req.UserID); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "start session failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, SessionStartResponse{Success: true, Status: "started"})
}

// RegenerateSession tears the client down and forces a new QR cycle.
func (h *Handler) RegenerateSession(c *gin.Context) {
	var req SessionStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json", "detail": err.Error()})
		return
	}
	if req.UserID == "" {
		req.UserID = h.defaultSession
	}

	if err := h.regenUC.Execute(c.Request.Context(), req.UserID); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "regenerate failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, SessionStartResponse{Success: true, Status: "regenerating"})
}
