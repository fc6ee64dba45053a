// Package api exposes the analyzer, the suggestion engine and the preview
// generator over HTTP.
package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seo-optimizer/backend/analyzer"
	"github.com/seo-optimizer/backend/logging"
	"github.com/seo-optimizer/backend/metrics"
	"github.com/seo-optimizer/backend/middleware"
	"github.com/seo-optimizer/backend/stats"
)

// Deps are the components served by the router. Only Analyzer is required.
type Deps struct {
	Analyzer    *analyzer.Analyzer
	Statistics  *logging.Statistics
	Storage     *stats.Storage
	Metrics     *metrics.Metrics
	RateLimiter *middleware.RateLimiter
	Logger      *zap.Logger
}

// Handler holds the dependencies of the HTTP handlers.
type Handler struct {
	analyzer   *analyzer.Analyzer
	statistics *logging.Statistics
	storage    *stats.Storage
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewRouter builds the gin engine with middleware and routes.
func NewRouter(deps Deps) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Statistics == nil {
		deps.Statistics = logging.NewStatistics(false)
	}
	h := &Handler{
		analyzer:   deps.Analyzer,
		statistics: deps.Statistics,
		storage:    deps.Storage,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
	}

	r := gin.New()
	recovery := middleware.ErrorHandler(deps.Logger)
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())

	var observers []middleware.RequestObserver
	if deps.Metrics != nil {
		observers = append(observers, deps.Metrics)
		r.GET("/metrics", recovery, gin.WrapH(deps.Metrics.Handler()))
	}
	// Stats wraps recovery so recovered panics are counted as 500s.
	r.Use(middleware.Stats(deps.Statistics, deps.Logger, observers...))
	r.Use(recovery)
	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.RateLimit())
	}

	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.POST("/analyze", h.analyze)
		api.POST("/suggestions", h.suggestions)
		api.POST("/preview", h.preview)
		api.GET("/cache", h.cacheStats)
		api.POST("/cache/lookup", h.cacheLookup)
		api.DELETE("/cache", h.clearCache)
		api.GET("/statistics", h.getStatistics)
	}

	return r
}
