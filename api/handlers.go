package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seo-optimizer/backend/analyzer"
	"github.com/seo-optimizer/backend/middleware"
	"github.com/seo-optimizer/backend/preview"
	"github.com/seo-optimizer/backend/suggest"
)

// SuggestionsResponse pairs an analysis with the suggestions derived from it.
type SuggestionsResponse struct {
	Analysis    analyzer.AnalysisResult `json:"analysis"`
	Suggestions suggest.Set             `json:"suggestions"`
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func (h *Handler) bindSnapshot(c *gin.Context) (analyzer.ContentSnapshot, bool) {
	var snapshot analyzer.ContentSnapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		h.logger.Debug("invalid analysis request",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return analyzer.ContentSnapshot{}, false
	}
	return snapshot, true
}

// statusFor maps an analysis outcome to an HTTP status.
func statusFor(result analyzer.AnalysisResult) int {
	if result.Outcome == analyzer.OutcomeFailed {
		return http.StatusBadGateway
	}
	return http.StatusOK
}

func (h *Handler) analyze(c *gin.Context) {
	snapshot, ok := h.bindSnapshot(c)
	if !ok {
		return
	}

	result := h.analyzer.Analyze(c.Request.Context(), snapshot)
	c.JSON(statusFor(result), result)
}

func (h *Handler) suggestions(c *gin.Context) {
	snapshot, ok := h.bindSnapshot(c)
	if !ok {
		return
	}

	result := h.analyzer.Analyze(c.Request.Context(), snapshot)
	resp := SuggestionsResponse{
		Analysis:    result,
		Suggestions: suggest.Generate(result),
	}
	if h.metrics != nil && result.Scored() {
		h.metrics.SuggestionsGenerated()
	}
	c.JSON(statusFor(result), resp)
}

func (h *Handler) preview(c *gin.Context) {
	var fields preview.MetaFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	set := preview.Generate(fields)
	if h.metrics != nil {
		h.metrics.PreviewGenerated()
	}
	c.JSON(http.StatusOK, set)
}

func (h *Handler) cacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyzer.GetCacheStats())
}

func (h *Handler) cacheLookup(c *gin.Context) {
	snapshot, ok := h.bindSnapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cached": h.analyzer.IsCached(snapshot),
	})
}

func (h *Handler) clearCache(c *gin.Context) {
	cleared := h.analyzer.GetCacheStats().Entries
	h.analyzer.ClearCache()
	h.logger.Info("analysis cache cleared",
		zap.Int("entries", cleared),
		zap.String("request_id", middleware.GetRequestID(c)))
	c.JSON(http.StatusOK, gin.H{
		"cleared": cleared,
	})
}

func (h *Handler) getStatistics(c *gin.Context) {
	out := gin.H{
		"requests": h.statistics.Snapshot(),
		"cache":    h.analyzer.GetCacheStats(),
	}
	if h.storage != nil {
		current := h.storage.GetCurrentStats()
		out["analysis"] = gin.H{
			"month":   current,
			"hitRate": current.HitRate(),
			"months":  h.storage.GetAllMonths(),
		}
	}
	c.JSON(http.StatusOK, out)
}
