package http

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type requestIDKey struct{}

// RequestID tags every request so an admin report ("my dispatch failed")
// can be matched against the gateway log. An ID supplied by the admin proxy
// is kept; everything else gets a fresh one. The ID rides the request
// context and is echoed back in the X-Request-ID response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), requestIDKey{}, id))
		c.Writer.Header().Set("X-Request-ID", id)

		c.Next()
	}
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// AccessLog writes one line per request. The session column makes pairing
// and send traffic greppable per device; requests outside a session scope
// log "-".
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		session := c.Param("session")
		if session == "" {
			session = "-"
		}

		log.Printf("request_id=%s session=%s method=%s path=%s status=%d bytes=%d latency=%s",
			requestIDFrom(c.Request.Context()),
			session,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start),
		)
	}
}
