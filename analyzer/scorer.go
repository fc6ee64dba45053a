package analyzer

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrScorerFailed wraps any error returned by a Scorer.
	ErrScorerFailed = errors.New("scoring failed")
	// ErrMalformedScores is returned when a Scorer answers with unusable data.
	ErrMalformedScores = errors.New("malformed scores")
)

// RawDimension is a single dimension as reported by a Scorer.
type RawDimension struct {
	Name    string                 `json:"name"`
	Score   int                    `json:"score"`
	Message string                 `json:"message,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Scores is the output of one scoring pass.
type Scores struct {
	Overall    int            `json:"overall_score"`
	Dimensions []RawDimension `json:"dimensions"`
}

// Scorer computes per-dimension scores for a validated snapshot.
type Scorer interface {
	Score(ctx context.Context, snapshot ContentSnapshot) (Scores, error)
}

// ScorerFunc adapts a function to the Scorer interface.
type ScorerFunc func(ctx context.Context, snapshot ContentSnapshot) (Scores, error)

// Score calls f.
func (f ScorerFunc) Score(ctx context.Context, snapshot ContentSnapshot) (Scores, error) {
	return f(ctx, snapshot)
}

func validateScores(s Scores) error {
	if s.Overall < 0 || s.Overall > 100 {
		return fmt.Errorf("%w: overall score %d out of range", ErrMalformedScores, s.Overall)
	}
	seen := make(map[string]bool, len(s.Dimensions))
	for _, d := range s.Dimensions {
		if d.Name == "" {
			return fmt.Errorf("%w: unnamed dimension", ErrMalformedScores)
		}
		if seen[d.Name] {
			return fmt.Errorf("%w: duplicate dimension %q", ErrMalformedScores, d.Name)
		}
		seen[d.Name] = true
		if d.Score < 0 || d.Score > 100 {
			return fmt.Errorf("%w: %s score %d out of range", ErrMalformedScores, d.Name, d.Score)
		}
	}
	return nil
}
