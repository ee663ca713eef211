package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger writes one logrus entry per request once the handler chain returns.
// Server errors log at error level, client errors at warn.
func Logger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   status,
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if rid := GetRequestID(c); rid != "" {
			fields["request_id"] = rid
		}

		entry := log.WithFields(fields)
		switch {
		case status >= 500:
			entry.Error("request")
		case status >= 400:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
	}
}
