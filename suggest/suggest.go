// Package suggest turns an analysis result into a prioritized list of actions.
package suggest

import (
	"sort"
	"strings"

	"github.com/seo-optimizer/backend/analyzer"
	"github.com/seo-optimizer/backend/dimension"
)

// Type is the category a suggestion belongs to.
type Type string

const (
	TypeQuickWin        Type = "quick_win"
	TypePriorityFix     Type = "priority_fix"
	TypeContentStrategy Type = "content_strategy"
	TypeTechnicalSEO    Type = "technical_seo"
)

// Priority tiers.
const (
	TierCritical = "critical"
	TierHigh     = "high"
	TierMedium   = "medium"
	TierLow      = "low"
)

// Difficulty levels.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// MaxRanked caps the flattened list.
const MaxRanked = 10

var tierWeights = map[string]int{
	TierCritical: 10,
	TierHigh:     7,
	TierMedium:   5,
	TierLow:      3,
}

var impactMultipliers = map[string]int{
	dimension.ImpactHigh:   3,
	dimension.ImpactMedium: 2,
	dimension.ImpactLow:    1,
}

// Suggestion is one actionable recommendation.
type Suggestion struct {
	Type            Type     `json:"type"`
	Kind            string   `json:"kind,omitempty"`
	Dimension       string   `json:"dimension"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	ActionSteps     []string `json:"actionSteps"`
	EstimatedEffort string   `json:"estimatedEffort"`
	ImpactScore     int      `json:"impactScore"`
	Difficulty      string   `json:"difficulty"`
	PriorityTier    string   `json:"priorityTier"`
}

// DetailedRecommendation describes where a single dimension stands and how to finish it.
type DetailedRecommendation struct {
	Dimension            string   `json:"dimension"`
	CurrentScore         int      `json:"currentScore"`
	Status               string   `json:"status"`
	TargetScore          int      `json:"targetScore"`
	ImprovementPotential int      `json:"improvementPotential"`
	Recommendations      []string `json:"recommendations"`
	BestPractices        []string `json:"bestPractices"`
}

// Set groups suggestions by category plus the ranked top list.
type Set struct {
	QuickWins       []Suggestion             `json:"quickWins"`
	PriorityFixes   []Suggestion             `json:"priorityFixes"`
	ContentStrategy []Suggestion             `json:"contentStrategy"`
	TechnicalSEO    []Suggestion             `json:"technicalSeo"`
	Detailed        []DetailedRecommendation `json:"detailedRecommendations"`
	All             []Suggestion             `json:"allSuggestions"`
}

// Generate builds every suggestion category from result. It is a pure function of its input.
func Generate(result analyzer.AnalysisResult) Set {
	set := Set{
		QuickWins:       quickWins(result.Feedback.QuickWins),
		PriorityFixes:   priorityFixes(result.Feedback.PriorityIssues),
		ContentStrategy: fromTemplates(TypeContentStrategy, contentStrategyTemplates, result.Dimensions),
		TechnicalSEO:    fromTemplates(TypeTechnicalSEO, technicalTemplates, result.Dimensions),
		Detailed:        detailed(result.Dimensions),
	}

	all := make([]Suggestion, 0, len(set.QuickWins)+len(set.PriorityFixes)+len(set.ContentStrategy)+len(set.TechnicalSEO))
	all = append(all, set.QuickWins...)
	all = append(all, set.PriorityFixes...)
	all = append(all, set.ContentStrategy...)
	all = append(all, set.TechnicalSEO...)
	set.All = Rank(all)

	return set
}

// Rank orders items by tier weight then impact, keeps the best item per dimension
// and truncates to MaxRanked. Equal items keep their input order.
func Rank(items []Suggestion) []Suggestion {
	sorted := append([]Suggestion(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		wi, wj := tierWeights[sorted[i].PriorityTier], tierWeights[sorted[j].PriorityTier]
		if wi != wj {
			return wi > wj
		}
		return sorted[i].ImpactScore > sorted[j].ImpactScore
	})

	ranked := make([]Suggestion, 0, MaxRanked)
	seen := make(map[string]bool, len(sorted))
	for _, s := range sorted {
		if seen[s.Dimension] {
			continue
		}
		seen[s.Dimension] = true
		ranked = append(ranked, s)
		if len(ranked) == MaxRanked {
			break
		}
	}
	return ranked
}

func quickWins(wins []analyzer.QuickWin) []Suggestion {
	out := make([]Suggestion, 0, len(wins))
	for _, w := range wins {
		out = append(out, Suggestion{
			Type:            TypeQuickWin,
			Dimension:       w.Dimension,
			Title:           dimension.Title(w.Dimension),
			Description:     dimension.Description(w.Dimension, w.CurrentScore),
			ActionSteps:     dimension.ActionSteps(w.Dimension),
			EstimatedEffort: dimension.EstimatedEffort(w.Dimension, dimension.EffortQuickWin),
			ImpactScore:     w.PotentialImprovement,
			Difficulty:      DifficultyEasy,
			PriorityTier:    quickWinTier(w.PotentialImprovement),
		})
	}
	return out
}

// quickWinTier weighs impact by the ease of an easy fix.
func quickWinTier(impact int) string {
	weighted := impact * 2
	switch {
	case weighted >= 40:
		return TierCritical
	case weighted >= 25:
		return TierHigh
	case weighted >= 15:
		return TierMedium
	default:
		return TierLow
	}
}

func priorityFixes(issues []analyzer.PriorityIssue) []Suggestion {
	out := make([]Suggestion, 0, len(issues))
	for _, issue := range issues {
		difficulty, tier := DifficultyEasy, TierHigh
		if issue.Severity == analyzer.PriorityCritical {
			difficulty, tier = DifficultyMedium, TierCritical
		}
		multiplier, ok := impactMultipliers[issue.Impact]
		if !ok {
			multiplier = 1
		}
		out = append(out, Suggestion{
			Type:            TypePriorityFix,
			Dimension:       issue.Dimension,
			Title:           capitalize(issue.Severity) + ": " + dimension.Title(issue.Dimension),
			Description:     dimension.Description(issue.Dimension, issue.Score),
			ActionSteps:     dimension.ActionSteps(issue.Dimension),
			EstimatedEffort: dimension.EstimatedEffort(issue.Dimension, dimension.EffortPriorityFix),
			ImpactScore:     (100 - issue.Score) * multiplier,
			Difficulty:      difficulty,
			PriorityTier:    tier,
		})
	}
	return out
}

func fromTemplates(typ Type, templates []template, dims analyzer.Dimensions) []Suggestion {
	out := make([]Suggestion, 0, len(templates))
	for _, tpl := range templates {
		d, ok := dims.Get(tpl.dimension)
		if !ok || d.Score >= tpl.threshold {
			continue
		}
		out = append(out, Suggestion{
			Type:            typ,
			Kind:            tpl.kind,
			Dimension:       tpl.dimension,
			Title:           tpl.title,
			Description:     tpl.description,
			ActionSteps:     tpl.steps(d.Score),
			EstimatedEffort: tpl.effort,
			ImpactScore:     max(0, dimension.TargetScore(tpl.dimension)-d.Score),
			Difficulty:      tpl.difficulty,
			PriorityTier:    tpl.tier,
		})
	}
	return out
}

func detailed(dims analyzer.Dimensions) []DetailedRecommendation {
	out := make([]DetailedRecommendation, 0, len(dims))
	for _, d := range dims {
		target := dimension.TargetScore(d.Name)
		out = append(out, DetailedRecommendation{
			Dimension:            d.Name,
			CurrentScore:         d.Score,
			Status:               d.Status,
			TargetScore:          target,
			ImprovementPotential: max(0, target-d.Score),
			Recommendations:      dimension.ActionSteps(d.Name),
			BestPractices:        dimension.BestPractices(d.Name),
		})
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
