package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultCacheFIFO(t *testing.T) {
	c := NewResultCache(2)

	assert.False(t, c.Add("a", AnalysisResult{OverallScore: 1}))
	assert.False(t, c.Add("b", AnalysisResult{OverallScore: 2}))

	_, ok := c.Get("a")
	assert.True(t, ok)

	assert.True(t, c.Add("c", AnalysisResult{OverallScore: 3}))
	assert.False(t, c.Contains("a"), "earliest insert is evicted even after a read")
	assert.True(t, c.Contains("b"))
	assert.True(t, c.Contains("c"))
}

func TestResultCacheWriteOnce(t *testing.T) {
	c := NewResultCache(2)
	c.Add("a", AnalysisResult{OverallScore: 1})
	c.Add("a", AnalysisResult{OverallScore: 99})

	got, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, got.OverallScore)
	assert.Equal(t, 1, c.Len())
}

func TestResultCacheClearAndStats(t *testing.T) {
	c := NewResultCache(0)
	assert.Equal(t, DefaultCacheCapacity, c.Capacity())

	c.Add("a", AnalysisResult{})
	c.Get("a")
	c.Get("missing")

	stats := c.Stats()
	assert.Equal(t, CacheStats{Entries: 1, Capacity: DefaultCacheCapacity, Usage: 2, Hits: 1, Misses: 1}, stats)

	c.Clear()
	assert.Zero(t, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestFingerprintIsStable(t *testing.T) {
	s := ContentSnapshot{Content: "body", Title: "t"}
	assert.Equal(t, Fingerprint(s), Fingerprint(s))
	assert.Len(t, Fingerprint(s), 32)
	assert.NotEqual(t, Fingerprint(s), Fingerprint(ContentSnapshot{Content: "body", Title: "u"}))
}

func TestResultCacheCopiesResults(t *testing.T) {
	c := NewResultCache(2)
	stored := AnalysisResult{
		Dimensions: Dimensions{{Name: "readability", Score: 50, Details: map[string]interface{}{"sentences": 4}}},
		Feedback: RealTimeFeedback{
			QuickWins:      []QuickWin{{Dimension: "readability", PotentialImprovement: 10}},
			PriorityIssues: []PriorityIssue{{Dimension: "readability", Score: 30}},
		},
	}
	c.Add("a", stored)
	stored.Dimensions[0].Score = 1

	got, _ := c.Get("a")
	got.Dimensions[0].Details["sentences"] = 99
	got.Feedback.QuickWins[0].PotentialImprovement = -1
	got.Feedback.PriorityIssues[0].Score = 0

	again, _ := c.Get("a")
	assert.Equal(t, 50, again.Dimensions[0].Score)
	assert.Equal(t, 4, again.Dimensions[0].Details["sentences"])
	assert.Equal(t, 10, again.Feedback.QuickWins[0].PotentialImprovement)
	assert.Equal(t, 30, again.Feedback.PriorityIssues[0].Score)
}
