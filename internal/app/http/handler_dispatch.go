package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostelhub/notify-gateway/internal/app/usecase"
)

// Dispatch runs one bulk batch: a personalized message per recipient,
// sequentially, with a tri-part summary (succeeded / failed / skipped) so a
// partial failure never masquerades as an all-or-nothing result.
func (h *Handler) Dispatch(c *gin.Context) {
	var req DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json", "detail": err.Error()})
		return
	}

	if req.Session == "" {
		req.Session = h.defaultSession
	}
	if len(req.Recipients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipients are required"})
		return
	}

	in := usecase.DispatchInput{
		Session:    req.Session,
		Template:   req.Template,
		Recipients: req.Recipients,
	}
	if req.Task != nil {
		in.Task = &usecase.TaskSpec{Title: req.Task.Title, DueDate: req.Task.DueDate}
	}

	out, err := h.dispatchUC.Execute(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dispatch failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, DispatchResponse{
		Success:      true,
		Summary:      out.Summary,
		TasksCreated: out.TasksCreated,
		TasksFailed:  out.TasksFailed,
		Results:      out.Results,
	})
}
