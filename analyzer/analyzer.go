package analyzer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

// DefaultMinContentLength is the shortest trimmed body, in characters, worth analyzing.
const DefaultMinContentLength = 50

// ErrInsufficientContent marks snapshots whose body is too short to analyze.
var ErrInsufficientContent = errors.New("insufficient content")

// Recorder observes every Analyze call.
type Recorder interface {
	RecordAnalysis(outcome Outcome, cacheHit bool, elapsed time.Duration)
}

// Options configures an Analyzer.
type Options struct {
	MinContentLength int
	// Cache is used as-is when set; otherwise a cache of CacheCapacity entries is created.
	Cache         *ResultCache
	CacheCapacity int
	Logger        *zap.Logger
	Recorders     []Recorder
}

// Analyzer orchestrates scoring, aggregation and caching of live content analysis.
type Analyzer struct {
	scorer    Scorer
	cache     *ResultCache
	minLength int
	logger    *zap.Logger
	recorders []Recorder
	now       func() time.Time
}

// New creates a new Analyzer around scorer.
func New(scorer Scorer, opts Options) *Analyzer {
	if opts.MinContentLength <= 0 {
		opts.MinContentLength = DefaultMinContentLength
	}
	if opts.Cache == nil {
		opts.Cache = NewResultCache(opts.CacheCapacity)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Analyzer{
		scorer:    scorer,
		cache:     opts.Cache,
		minLength: opts.MinContentLength,
		logger:    opts.Logger,
		recorders: opts.Recorders,
		now:       time.Now,
	}
}

// Analyze scores snapshot, returning a cached result when the fingerprint was seen before.
// Failures are reported through the result's Outcome; Analyze never panics on scorer errors.
func (a *Analyzer) Analyze(ctx context.Context, snapshot ContentSnapshot) AnalysisResult {
	start := a.now()

	validated, err := a.validate(snapshot)
	if err != nil {
		a.record(OutcomeInsufficientContent, false, 0)
		return a.insufficientResult()
	}

	key := Fingerprint(validated)
	if cached, ok := a.cache.Get(key); ok {
		a.logger.Debug("analysis cache hit", zap.String("fingerprint", key))
		a.record(cached.Outcome, true, 0)
		return cached
	}

	scores, err := a.score(ctx, validated)
	elapsed := a.now().Sub(start)
	if err != nil {
		a.logger.Warn("analysis failed",
			zap.String("fingerprint", key),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		a.record(OutcomeFailed, false, elapsed)
		return a.failedResult(err, elapsed)
	}

	dims := buildDimensions(scores.Dimensions)
	result := AnalysisResult{
		Outcome:      OutcomeAnalyzed,
		OverallScore: scores.Overall,
		Dimensions:   dims,
		Feedback:     buildFeedback(scores.Overall, dims),
		ElapsedMs:    millis(elapsed),
		Timestamp:    a.now().UTC(),
	}

	if a.cache.Add(key, result) {
		a.logger.Debug("analysis cache evicted oldest entry", zap.Int("capacity", a.cache.Capacity()))
	}
	a.logger.Debug("analysis completed",
		zap.String("fingerprint", key),
		zap.Int("overall_score", result.OverallScore),
		zap.Int("dimensions", len(dims)),
		zap.Duration("elapsed", elapsed))
	a.record(OutcomeAnalyzed, false, elapsed)

	return result
}

func (a *Analyzer) score(ctx context.Context, snapshot ContentSnapshot) (Scores, error) {
	if err := ctx.Err(); err != nil {
		return Scores{}, fmt.Errorf("%w: %w", ErrScorerFailed, err)
	}
	if a.scorer == nil {
		return Scores{}, fmt.Errorf("%w: no scorer configured", ErrScorerFailed)
	}
	scores, err := a.scorer.Score(ctx, snapshot)
	if err != nil {
		return Scores{}, fmt.Errorf("%w: %w", ErrScorerFailed, err)
	}
	if err := validateScores(scores); err != nil {
		return Scores{}, err
	}
	return scores, nil
}

// validate trims every field and enforces the minimum body length.
func (a *Analyzer) validate(s ContentSnapshot) (ContentSnapshot, error) {
	v := ContentSnapshot{
		Content:      strings.TrimSpace(s.Content),
		Title:        strings.TrimSpace(s.Title),
		Excerpt:      strings.TrimSpace(s.Excerpt),
		FocusKeyword: strings.TrimSpace(s.FocusKeyword),
		URL:          strings.TrimSpace(s.URL),
	}
	if n := utf8.RuneCountInString(v.Content); n < a.minLength {
		return ContentSnapshot{}, fmt.Errorf("%w: %d of %d characters", ErrInsufficientContent, n, a.minLength)
	}
	return v, nil
}

func (a *Analyzer) insufficientResult() AnalysisResult {
	return AnalysisResult{
		Outcome:    OutcomeInsufficientContent,
		Dimensions: Dimensions{},
		Feedback:   emptyFeedback(FeedbackInsufficientContent),
		Timestamp:  a.now().UTC(),
	}
}

func (a *Analyzer) failedResult(err error, elapsed time.Duration) AnalysisResult {
	return AnalysisResult{
		Outcome:    OutcomeFailed,
		Dimensions: Dimensions{},
		Feedback:   emptyFeedback(FeedbackFailed),
		ElapsedMs:  millis(elapsed),
		Timestamp:  a.now().UTC(),
		Error:      err.Error(),
		Err:        err,
	}
}

func (a *Analyzer) record(outcome Outcome, hit bool, elapsed time.Duration) {
	for _, r := range a.recorders {
		r.RecordAnalysis(outcome, hit, elapsed)
	}
}

// IsCached checks if the snapshot's fingerprint is in the cache.
func (a *Analyzer) IsCached(snapshot ContentSnapshot) bool {
	validated, err := a.validate(snapshot)
	if err != nil {
		return false
	}
	return a.cache.Contains(Fingerprint(validated))
}

// Cache returns the result cache owned by the analyzer.
func (a *Analyzer) Cache() *ResultCache {
	return a.cache
}

// ClearCache clears the analysis cache.
func (a *Analyzer) ClearCache() {
	a.cache.Clear()
}

// GetCacheStats returns statistics about the cache.
func (a *Analyzer) GetCacheStats() CacheStats {
	return a.cache.Stats()
}

func millis(d time.Duration) float64 {
	return math.Round(float64(d.Microseconds())/10) / 100
}
