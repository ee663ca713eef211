// Package api exposes the oracle over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/costar/internal/middleware"
	"github.com/katalvlaran/costar/oracle"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Oracles     *oracle.Holder
	CORSOrigins []string
}

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(middleware.Logger(deps.Log))
	r.Use(gin.Recovery())
	if len(deps.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: deps.CORSOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodOptions},
			AllowHeaders: []string{"Content-Type", middleware.RequestIDHeader},
			MaxAge:       1 * time.Hour,
		}))
	}
	r.Use(middleware.Prometheus())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up the API handlers.
func registerRoutes(r *gin.Engine, deps *RouterDeps) {
	h := NewOracleHandler(deps.Oracles, deps.Log)

	r.GET("/healthz", h.Health)

	v1 := r.Group("/v1")
	v1.GET("/oracle/:name", h.Query)
	v1.GET("/component/:name", h.Component)
	v1.GET("/stats", h.Stats)
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(r, deps)
	registerRoutes(r, deps)

	return r
}
