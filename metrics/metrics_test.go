package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seo-optimizer/backend/analyzer"
)

func TestRecordAnalysis(t *testing.T) {
	m := New()
	m.RecordAnalysis(analyzer.OutcomeAnalyzed, false, 5*time.Millisecond)
	m.RecordAnalysis(analyzer.OutcomeAnalyzed, true, 0)
	m.RecordAnalysis(analyzer.OutcomeAnalyzed, true, 0)
	m.RecordAnalysis(analyzer.OutcomeFailed, false, time.Millisecond)
	m.RecordAnalysis(analyzer.OutcomeInsufficientContent, false, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.analyses.WithLabelValues("analyzed", "miss")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.analyses.WithLabelValues("analyzed", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.analyses.WithLabelValues("analysis_failed", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.analyses.WithLabelValues("insufficient_content", "skipped")))

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	var observed uint64
	for _, f := range families {
		if f.GetName() == "seo_scoring_duration_seconds" {
			observed = f.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	assert.Equal(t, uint64(2), observed, "only cache misses are timed")
}

func TestSeparateInstancesDoNotCollide(t *testing.T) {
	a, b := New(), New()
	a.PreviewGenerated()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.previews))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.previews))
}

func TestHandlerExposesCacheGauges(t *testing.T) {
	m := New()
	scorer := analyzer.ScorerFunc(func(context.Context, analyzer.ContentSnapshot) (analyzer.Scores, error) {
		return analyzer.Scores{Overall: 80}, nil
	})
	cache := analyzer.NewResultCache(10)
	m.TrackCache(cache)
	a := analyzer.New(scorer, analyzer.Options{Cache: cache, Recorders: []analyzer.Recorder{m}})
	a.Analyze(context.Background(), analyzer.ContentSnapshot{Content: strings.Repeat("words ", 20)})

	m.SuggestionsGenerated()
	m.ObserveRequest(http.MethodPost, "/api/analyze", http.StatusOK, 3*time.Millisecond)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()
	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, "seo_cache_entries 1")
	assert.Contains(t, text, "seo_cache_capacity 10")
	assert.Contains(t, text, "seo_suggestion_sets_total 1")
	assert.Contains(t, text, `seo_http_requests_total{method="POST",route="/api/analyze",status="200"} 1`)
	assert.Contains(t, text, `seo_analyses_total{cache="miss",outcome="analyzed"} 1`)
}
