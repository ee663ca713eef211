package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/costar/internal/metrics"
)

// Prometheus records HTTP request duration and count per route pattern.
func Prometheus() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		// route pattern, not the raw path: names must not become label values
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		metrics.RequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		metrics.RequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}
