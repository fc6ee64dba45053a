package analyzer

import (
	"bytes"
	"encoding/json"
	"time"
)

// ContentSnapshot is the editor state submitted for analysis.
type ContentSnapshot struct {
	Content      string `json:"content"`
	Title        string `json:"title"`
	Excerpt      string `json:"excerpt"`
	FocusKeyword string `json:"focusKeyword"`
	URL          string `json:"url"`
}

// Outcome tells a real score apart from the two no-score states.
type Outcome string

const (
	OutcomeAnalyzed            Outcome = "analyzed"
	OutcomeInsufficientContent Outcome = "insufficient_content"
	OutcomeFailed              Outcome = "analysis_failed"
)

// Per-dimension status.
const (
	StatusExcellent        = "excellent"
	StatusGood             = "good"
	StatusNeedsImprovement = "needs_improvement"
)

// Improvement priorities and issue severities.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// Overall feedback status.
const (
	FeedbackOptimized           = "optimized"
	FeedbackGood                = "good"
	FeedbackNeedsWork           = "needs_work"
	FeedbackPoor                = "poor"
	FeedbackInsufficientContent = "insufficient_content"
	FeedbackFailed              = "analysis_failed"
)

// Content health.
const (
	HealthCritical         = "critical"
	HealthExcellent        = "excellent"
	HealthGood             = "good"
	HealthNeedsImprovement = "needs_improvement"
	HealthUnknown          = "unknown"
)

// DimensionScore is one scored quality axis.
type DimensionScore struct {
	Name     string                 `json:"name"`
	Score    int                    `json:"score"`
	Status   string                 `json:"status"`
	Message  string                 `json:"message"`
	Details  map[string]interface{} `json:"details,omitempty"`
	Priority string                 `json:"priority"`
}

// Dimensions keeps scores in the order the scorer produced them.
type Dimensions []DimensionScore

// Get looks a dimension up by name.
func (d Dimensions) Get(name string) (DimensionScore, bool) {
	for _, s := range d {
		if s.Name == name {
			return s, true
		}
	}
	return DimensionScore{}, false
}

// MarshalJSON encodes the dimensions as an object keyed by name, preserving order.
func (d Dimensions) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// QuickWin is a mediocre dimension that is cheap to improve.
type QuickWin struct {
	Dimension            string `json:"dimension"`
	CurrentScore         int    `json:"currentScore"`
	PotentialImprovement int    `json:"potentialImprovement"`
	Action               string `json:"action"`
	Effort               string `json:"effort"`
}

// PriorityIssue is a dimension scoring low enough to need attention first.
type PriorityIssue struct {
	Dimension      string `json:"dimension"`
	Score          int    `json:"score"`
	Severity       string `json:"severity"`
	Impact         string `json:"impact"`
	Recommendation string `json:"recommendation"`
}

// Progress summarizes how many checks passed.
type Progress struct {
	Total             int    `json:"total"`
	Passed            int    `json:"passed"`
	Warning           int    `json:"warning"`
	Failed            int    `json:"failed"`
	CompletionPercent int    `json:"completionPercent"`
	Health            string `json:"health"`
}

// RealTimeFeedback is the summary rendered next to the editor.
type RealTimeFeedback struct {
	Status         string          `json:"status"`
	QuickWins      []QuickWin      `json:"quickWins"`
	PriorityIssues []PriorityIssue `json:"priorityIssues"`
	Progress       Progress        `json:"progress"`
}

// AnalysisResult is the cacheable unit of work.
type AnalysisResult struct {
	Outcome      Outcome          `json:"outcome"`
	OverallScore int              `json:"overallScore"`
	Dimensions   Dimensions       `json:"dimensions"`
	Feedback     RealTimeFeedback `json:"feedback"`
	ElapsedMs    float64          `json:"elapsedMs"`
	Timestamp    time.Time        `json:"timestamp"`
	Error        string           `json:"error,omitempty"`

	// Err is the underlying cause when Outcome is OutcomeFailed.
	Err error `json:"-"`
}

// Scored reports whether OverallScore is a real score.
func (r AnalysisResult) Scored() bool {
	return r.Outcome == OutcomeAnalyzed
}

// clone returns a copy that shares no slices or maps with r.
func (r AnalysisResult) clone() AnalysisResult {
	if r.Dimensions != nil {
		dims := make(Dimensions, len(r.Dimensions))
		for i, d := range r.Dimensions {
			if d.Details != nil {
				details := make(map[string]interface{}, len(d.Details))
				for k, v := range d.Details {
					details[k] = v
				}
				d.Details = details
			}
			dims[i] = d
		}
		r.Dimensions = dims
	}
	if r.Feedback.QuickWins != nil {
		r.Feedback.QuickWins = append([]QuickWin{}, r.Feedback.QuickWins...)
	}
	if r.Feedback.PriorityIssues != nil {
		r.Feedback.PriorityIssues = append([]PriorityIssue{}, r.Feedback.PriorityIssues...)
	}
	return r
}

// CacheStats provides statistics about the result cache.
type CacheStats struct {
	Entries   int     `json:"entries"`
	Capacity  int     `json:"capacity"`
	Usage     float64 `json:"usagePercentage"`
	Hits      int     `json:"hits"`
	Misses    int     `json:"misses"`
	Evictions int     `json:"evictions"`
}
