package api

import (
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/costar/internal/metrics"
	"github.com/katalvlaran/costar/internal/middleware"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeNotFound       = "not_found"
	ErrCodeUnavailable    = "unavailable"
	ErrCodeInternalError  = "internal_error"
)

// respondError writes a standardized JSON error response and aborts the request.
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()

	resp := map[string]string{
		"code":    code,
		"message": message,
	}
	if rid := middleware.GetRequestID(c); rid != "" {
		resp["request_id"] = rid
	}

	c.AbortWithStatusJSON(status, resp)
}
