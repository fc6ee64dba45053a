package analyzer

import (
	"math"
	"sort"

	"github.com/seo-optimizer/backend/dimension"
)

const maxQuickWins = 3

func scoreStatus(score int) string {
	switch {
	case score >= 80:
		return StatusExcellent
	case score >= 60:
		return StatusGood
	default:
		return StatusNeedsImprovement
	}
}

func improvementPriority(score int) string {
	switch {
	case score < 30:
		return PriorityCritical
	case score < 50:
		return PriorityHigh
	case score < 70:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func overallStatus(score int) string {
	switch {
	case score >= 80:
		return FeedbackOptimized
	case score >= 60:
		return FeedbackGood
	case score >= 40:
		return FeedbackNeedsWork
	default:
		return FeedbackPoor
	}
}

func buildDimensions(raw []RawDimension) Dimensions {
	dims := make(Dimensions, 0, len(raw))
	for _, r := range raw {
		dims = append(dims, DimensionScore{
			Name:     r.Name,
			Score:    r.Score,
			Status:   scoreStatus(r.Score),
			Message:  r.Message,
			Details:  r.Details,
			Priority: improvementPriority(r.Score),
		})
	}
	return dims
}

func buildFeedback(overall int, dims Dimensions) RealTimeFeedback {
	return RealTimeFeedback{
		Status:         overallStatus(overall),
		QuickWins:      quickWins(dims),
		PriorityIssues: priorityIssues(dims),
		Progress:       progress(dims),
	}
}

// quickWins returns up to three dimensions in [40,70), largest potential first.
func quickWins(dims Dimensions) []QuickWin {
	wins := make([]QuickWin, 0, len(dims))
	for _, d := range dims {
		if d.Score < 40 || d.Score >= 70 {
			continue
		}
		wins = append(wins, QuickWin{
			Dimension:            d.Name,
			CurrentScore:         d.Score,
			PotentialImprovement: min(dimension.Ceiling(d.Name), 100-d.Score),
			Action:               dimension.QuickWinAction(d.Name),
			Effort:               "low",
		})
	}

	sort.SliceStable(wins, func(i, j int) bool {
		return wins[i].PotentialImprovement > wins[j].PotentialImprovement
	})

	if len(wins) > maxQuickWins {
		wins = wins[:maxQuickWins]
	}
	return wins
}

func priorityIssues(dims Dimensions) []PriorityIssue {
	issues := make([]PriorityIssue, 0)
	for _, d := range dims {
		if d.Score >= 40 {
			continue
		}
		severity := PriorityHigh
		if d.Score < 20 {
			severity = PriorityCritical
		}
		issues = append(issues, PriorityIssue{
			Dimension:      d.Name,
			Score:          d.Score,
			Severity:       severity,
			Impact:         dimension.Impact(d.Name),
			Recommendation: dimension.PriorityRecommendation(d.Name, d.Score),
		})
	}
	return issues
}

func progress(dims Dimensions) Progress {
	p := Progress{Total: len(dims)}
	for _, d := range dims {
		switch {
		case d.Score >= 70:
			p.Passed++
		case d.Score >= 40:
			p.Warning++
		default:
			p.Failed++
		}
	}

	if p.Total == 0 {
		p.Health = HealthUnknown
		return p
	}

	passedPct := float64(p.Passed) / float64(p.Total) * 100
	failedPct := float64(p.Failed) / float64(p.Total) * 100
	p.CompletionPercent = int(math.Round(passedPct))

	switch {
	case failedPct > 50:
		p.Health = HealthCritical
	case passedPct >= 70:
		p.Health = HealthExcellent
	case passedPct >= 50:
		p.Health = HealthGood
	default:
		p.Health = HealthNeedsImprovement
	}
	return p
}

func emptyFeedback(status string) RealTimeFeedback {
	return RealTimeFeedback{
		Status:         status,
		QuickWins:      []QuickWin{},
		PriorityIssues: []PriorityIssue{},
		Progress:       Progress{Health: HealthUnknown},
	}
}
