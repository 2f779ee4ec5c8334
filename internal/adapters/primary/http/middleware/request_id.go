package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rendis/resumegen/internal/infra/logging"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID assigns a request id (from the inbound header, or a fresh one),
// echoes it back, stashes it in gin's context, and attaches it to the
// request's context via logging.WithAttrs so every log line in this
// request's lifetime carries it automatically.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)

		ctx := logging.WithAttrs(c.Request.Context(), slog.String("request_id", id))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetRequestID retrieves the current request's id.
func GetRequestID(c *gin.Context) string {
	if val, exists := c.Get(requestIDKey); exists {
		if id, ok := val.(string); ok {
			return id
		}
	}
	return ""
}
