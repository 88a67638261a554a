package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostelhub/notify-gateway/internal/app/usecase"
)

type Handler struct {
	startUC    *usecase.StartSessionUsecase
	statusUC   *usecase.SessionStatusUsecase
	regenUC    *usecase.RegenerateUsecase
	sendUC     *usecase.SendTextUsecase
	dispatchUC *usecase.DispatchUsecase
	eventsUC   *usecase.SessionEventsUsecase

	// defaultSession serves the endpoints the admin UI calls without a
	// session parameter.
	defaultSession string
}

func NewHandler(
	startUC *usecase.StartSessionUsecase,
	statusUC *usecase.SessionStatusUsecase,
	regenUC *usecase.RegenerateUsecase,
	sendUC *usecase.SendTextUsecase,
	dispatchUC *usecase.DispatchUsecase,
	eventsUC *usecase.SessionEventsUsecase,
	defaultSession string,
) *Handler {
	return &Handler{
		startUC:        startUC,
		statusUC:       statusUC,
		regenUC:        regenUC,
		sendUC:         sendUC,
		dispatchUC:     dispatchUC,
		eventsUC:       eventsUC,
		defaultSession: defaultSession,
	}
}

// Health answers uptime monitors with a bare 200 OK.
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (h *Handler) sessionOrDefault(c *gin.Context) string {
	if session := c.Param("session"); session != "" {
		return session
	}
	return h.defaultSession
}
