package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seo-optimizer/backend/analyzer"
	"github.com/seo-optimizer/backend/dimension"
)

func sampleResult() analyzer.AnalysisResult {
	return analyzer.AnalysisResult{
		Outcome:      analyzer.OutcomeAnalyzed,
		OverallScore: 52,
		Dimensions: analyzer.Dimensions{
			{Name: dimension.TitleAnalysis, Score: 45, Status: analyzer.StatusNeedsImprovement},
			{Name: dimension.MetaDescription, Score: 15, Status: analyzer.StatusNeedsImprovement},
			{Name: dimension.KeywordDensity, Score: 55, Status: analyzer.StatusNeedsImprovement},
			{Name: dimension.ContentLength, Score: 30, Status: analyzer.StatusNeedsImprovement},
			{Name: dimension.HeadingStructure, Score: 90, Status: analyzer.StatusExcellent},
			{Name: dimension.ImageAltTags, Score: 90, Status: analyzer.StatusExcellent},
		},
		Feedback: analyzer.RealTimeFeedback{
			QuickWins: []analyzer.QuickWin{
				{Dimension: dimension.KeywordDensity, CurrentScore: 55, PotentialImprovement: 25},
				{Dimension: dimension.TitleAnalysis, CurrentScore: 45, PotentialImprovement: 20},
			},
			PriorityIssues: []analyzer.PriorityIssue{
				{Dimension: dimension.MetaDescription, Score: 15, Severity: analyzer.PriorityCritical, Impact: dimension.ImpactHigh},
				{Dimension: dimension.ContentLength, Score: 30, Severity: analyzer.PriorityHigh, Impact: dimension.ImpactMedium},
			},
		},
	}
}

func TestGenerateCategories(t *testing.T) {
	set := Generate(sampleResult())

	require.Len(t, set.QuickWins, 2)
	assert.Equal(t, TypeQuickWin, set.QuickWins[0].Type)
	assert.Equal(t, TierCritical, set.QuickWins[0].PriorityTier)
	assert.Equal(t, DifficultyEasy, set.QuickWins[0].Difficulty)
	assert.Equal(t, "5-10 minutes", set.QuickWins[0].EstimatedEffort)

	require.Len(t, set.PriorityFixes, 2)
	meta := set.PriorityFixes[0]
	assert.Equal(t, "Critical: Add Meta Description", meta.Title)
	assert.Equal(t, 255, meta.ImpactScore)
	assert.Equal(t, DifficultyMedium, meta.Difficulty)
	assert.Equal(t, TierCritical, meta.PriorityTier)
	content := set.PriorityFixes[1]
	assert.Equal(t, "High: Expand Content", content.Title)
	assert.Equal(t, 140, content.ImpactScore)
	assert.Equal(t, DifficultyEasy, content.Difficulty)
	assert.Equal(t, TierHigh, content.PriorityTier)

	require.Len(t, set.ContentStrategy, 2, "heading structure is above its threshold")
	assert.Equal(t, "content_expansion", set.ContentStrategy[0].Kind)
	assert.Equal(t, DifficultyHard, set.ContentStrategy[0].Difficulty)
	assert.Equal(t, 55, set.ContentStrategy[0].ImpactScore)
	assert.Equal(t, "keyword_optimization", set.ContentStrategy[1].Kind)
	assert.Equal(t, "Fine-tune keyword density for optimal distribution", set.ContentStrategy[1].ActionSteps[0])

	require.Len(t, set.TechnicalSEO, 2, "image alt tags are above their threshold")
	assert.Equal(t, "meta_optimization", set.TechnicalSEO[0].Kind)
	assert.Equal(t, "Write a meta description (currently missing)", set.TechnicalSEO[0].ActionSteps[0])
	assert.Equal(t, "title_optimization", set.TechnicalSEO[1].Kind)

	require.Len(t, set.Detailed, 6)
	assert.Equal(t, 85, set.Detailed[0].TargetScore)
	assert.Equal(t, 40, set.Detailed[0].ImprovementPotential)
	assert.Zero(t, set.Detailed[4].ImprovementPotential)
}

func TestGenerateRankedList(t *testing.T) {
	all := Generate(sampleResult()).All

	var dims []string
	for _, s := range all {
		dims = append(dims, s.Dimension)
	}
	assert.Equal(t, []string{
		dimension.MetaDescription,
		dimension.KeywordDensity,
		dimension.TitleAnalysis,
		dimension.ContentLength,
	}, dims)
	assert.Equal(t, TypePriorityFix, all[0].Type)
	assert.Equal(t, TypePriorityFix, all[3].Type, "the priority fix outranks the content strategy item")
}

func TestGenerateEmptyResult(t *testing.T) {
	set := Generate(analyzer.AnalysisResult{Outcome: analyzer.OutcomeInsufficientContent})
	assert.Empty(t, set.QuickWins)
	assert.Empty(t, set.PriorityFixes)
	assert.Empty(t, set.ContentStrategy)
	assert.Empty(t, set.TechnicalSEO)
	assert.Empty(t, set.All)
}

func TestRankStableAndCapped(t *testing.T) {
	var items []Suggestion
	for i, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		items = append(items, Suggestion{Dimension: name, PriorityTier: TierMedium, ImpactScore: 10 - i%2})
	}
	ranked := Rank(items)
	require.Len(t, ranked, MaxRanked)
	assert.Equal(t, []string{"a", "c", "e", "g", "i", "k", "b", "d", "f", "h"}, func() []string {
		out := make([]string, len(ranked))
		for i, s := range ranked {
			out[i] = s.Dimension
		}
		return out
	}())
}

func TestRankTierBeatsImpact(t *testing.T) {
	ranked := Rank([]Suggestion{
		{Dimension: "x", PriorityTier: TierLow, ImpactScore: 500},
		{Dimension: "y", PriorityTier: TierCritical, ImpactScore: 1},
		{Dimension: "x", PriorityTier: TierHigh, ImpactScore: 2},
	})
	require.Len(t, ranked, 2)
	assert.Equal(t, "y", ranked[0].Dimension)
	assert.Equal(t, TierHigh, ranked[1].PriorityTier, "only the best item per dimension survives")
}

func TestQuickWinTier(t *testing.T) {
	cases := []struct {
		impact int
		want   string
	}{
		{20, TierCritical},
		{19, TierHigh},
		{13, TierHigh},
		{12, TierMedium},
		{8, TierMedium},
		{7, TierLow},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, quickWinTier(c.impact), "impact %d", c.impact)
	}
}
