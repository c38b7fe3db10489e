// Package http assembles the gin route tree and the HTTP server hosting the
// ArbiLens API.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/veritaslex/arbilens/internal/infrastructure/monitoring/logging"
	"github.com/veritaslex/arbilens/internal/infrastructure/monitoring/prometheus"
	"github.com/veritaslex/arbilens/internal/interfaces/http/handlers"
	"github.com/veritaslex/arbilens/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handler and middleware dependencies required
// to construct the complete route tree.
type RouterConfig struct {
	// Handlers.  A nil handler leaves its routes unregistered.
	DocumentHandler *handlers.DocumentHandler
	ConceptHandler  *handlers.ConceptHandler
	SearchHandler   *handlers.SearchHandler
	CompareHandler  *handlers.CompareHandler
	ArgumentHandler *handlers.ArgumentHandler
	HealthHandler   *handlers.HealthHandler

	// Infrastructure.
	Logger  logging.Logger
	Metrics *prometheus.Metrics

	// Mode is the gin mode ("release", "debug", "test").  Empty means
	// release.
	Mode string

	// CORS overrides the default policy when non-nil.
	CORS *middleware.CORSConfig
}

// NewRouter constructs the complete route tree: global middleware, public
// probes, the metrics endpoint, and the /api/v1 resource groups.
func NewRouter(cfg RouterConfig) *gin.Engine {
	mode := cfg.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging(cfg.Logger, cfg.Metrics))

	cors := middleware.DefaultCORSConfig()
	if cfg.CORS != nil {
		cors = *cfg.CORS
	}
	r.Use(middleware.CORS(cors))

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterRoutes(r)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api/v1")
	if cfg.DocumentHandler != nil {
		cfg.DocumentHandler.RegisterRoutes(api)
	}
	if cfg.ConceptHandler != nil {
		cfg.ConceptHandler.RegisterRoutes(api)
	}
	if cfg.SearchHandler != nil {
		cfg.SearchHandler.RegisterRoutes(api)
	}
	if cfg.CompareHandler != nil {
		cfg.CompareHandler.RegisterRoutes(api)
	}
	if cfg.ArgumentHandler != nil {
		cfg.ArgumentHandler.RegisterRoutes(api)
	}

	return r
}
