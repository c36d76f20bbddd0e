package middleware

import (
	"strconv"
	"time"

	"tablestay/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request latency labeled by the route template so
// per-ID paths do not explode cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
