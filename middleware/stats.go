package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seo-optimizer/backend/logging"
)

// RequestObserver receives every finished request.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// Stats tracks request statistics and forwards timings to the observers.
func Stats(stats *logging.Statistics, logger *zap.Logger, observers ...RequestObserver) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		elapsed := time.Since(start)
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		if stats != nil {
			stats.TrackRequest(c.ClientIP(), c.Request.Method+" "+route, elapsed, status >= http.StatusInternalServerError)
		}
		for _, o := range observers {
			o.ObserveRequest(c.Request.Method, route, status, elapsed)
		}

		logger.Debug("request completed",
			zap.String("request_id", GetRequestID(c)),
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("elapsed", elapsed))
	}
}
