package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestTimeout bounds every synchronous request to d (spec.md §5 default
// 120s), replacing the request's context with one that expires at the
// deadline. Handlers that honor ctx.Done() (the Typst compiler, cache, and
// Redis calls all do) unwind instead of running past the deadline.
func RequestTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
