package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(h *Handler, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), AccessLog(), gin.Recovery())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", h.Health)

	api := r.Group("/api")
	api.POST("/send", h.Send)
	api.GET("/qr", h.QR)
	api.GET("/qr/:session", h.QR)
	api.POST("/dispatch", h.Dispatch)

	sessions := api.Group("/session")
	sessions.POST("/start", h.StartSession)
	sessions.POST("/regenerate", h.RegenerateSession)
	sessions.GET("/:session/events", h.EventsStream)

	return r
}
