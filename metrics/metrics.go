// Package metrics exposes Prometheus collectors for the analysis service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/seo-optimizer/backend/analyzer"
)

const namespace = "seo"

// Metrics owns the collectors and the registry they are registered with.
type Metrics struct {
	registry *prometheus.Registry

	analyses        *prometheus.CounterVec
	scoringDuration prometheus.Histogram
	suggestions     prometheus.Counter
	previews        prometheus.Counter
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// New creates the collectors on a fresh registry, including the Go runtime
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "analyses_total",
				Help:      "Total number of analysis calls by outcome and cache result",
			},
			[]string{"outcome", "cache"},
		),
		scoringDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "scoring_duration_seconds",
				Help:      "Time spent in the scorer for cache misses",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
			},
		),
		suggestions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suggestion_sets_total",
			Help:      "Total number of generated suggestion sets",
		}),
		previews: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "previews_total",
			Help:      "Total number of generated channel previews",
		}),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	m.registry.MustRegister(
		m.analyses,
		m.scoringDuration,
		m.suggestions,
		m.previews,
		m.httpRequests,
		m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry backing Handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordAnalysis implements analyzer.Recorder.
func (m *Metrics) RecordAnalysis(outcome analyzer.Outcome, cacheHit bool, elapsed time.Duration) {
	cache := "miss"
	switch {
	case cacheHit:
		cache = "hit"
	case outcome == analyzer.OutcomeInsufficientContent:
		cache = "skipped"
	}
	m.analyses.WithLabelValues(string(outcome), cache).Inc()
	if cache == "miss" {
		m.scoringDuration.Observe(elapsed.Seconds())
	}
}

// TrackCache exports the occupancy of cache as gauges.
func (m *Metrics) TrackCache(cache *analyzer.ResultCache) {
	m.registry.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_entries",
			Help:      "Number of analysis results held in the cache",
		}, func() float64 { return float64(cache.Len()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_capacity",
			Help:      "Maximum number of analysis results held in the cache",
		}, func() float64 { return float64(cache.Capacity()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_evictions_total",
			Help:      "Number of analysis results evicted from the cache",
		}, func() float64 { return float64(cache.Stats().Evictions) }),
	)
}

// SuggestionsGenerated counts one suggestion set.
func (m *Metrics) SuggestionsGenerated() {
	m.suggestions.Inc()
}

// PreviewGenerated counts one preview.
func (m *Metrics) PreviewGenerated() {
	m.previews.Inc()
}

// ObserveRequest records a finished HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
