package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rendis/resumegen/internal/core/ratelimit"
	"github.com/rendis/resumegen/internal/metrics"
)

// RateLimit wraps a ratelimit.Limiter as gin middleware, keyed by the
// client IP (gin's ClientIP already honors X-Forwarded-For's first hop when
// trusted proxies are configured), setting the X-RateLimit-* and
// Retry-After headers of spec.md §4.10.
func RateLimit(l *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if key == "" {
			key = "unknown"
		}

		decision := l.Allow(c.Request.Context(), key)

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		c.Header("X-RateLimit-Reset", strconv.Itoa(decision.ResetSecs))

		if !decision.Allowed {
			metrics.RateLimitRejected.WithLabelValues("redis").Inc()
			c.Header("Retry-After", strconv.Itoa(decision.ResetSecs))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{
					"code":    "API003",
					"message": "rate limit exceeded",
				},
			})
			return
		}

		metrics.RateLimitAllowed.WithLabelValues("redis").Inc()
		c.Next()
	}
}
