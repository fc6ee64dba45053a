// Package cmd implements the command line interface.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/seo-optimizer/backend/analyzer"
	"github.com/seo-optimizer/backend/dimension"
	"github.com/seo-optimizer/backend/preview"
	"github.com/seo-optimizer/backend/suggest"
)

const (
	outputHuman = "human"
	outputJSON  = "json"
)

func checkOutput(format string) error {
	switch format {
	case outputHuman, outputJSON:
		return nil
	}
	return fmt.Errorf("unsupported output format %q (use human or json)", format)
}

func scoreColor(score int) *color.Color {
	switch {
	case score >= 80:
		return color.New(color.FgGreen)
	case score >= 60:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func printAnalysis(w io.Writer, result analyzer.AnalysisResult, set suggest.Set) {
	cyan := color.New(color.FgCyan, color.Bold)
	red := color.New(color.FgRed)

	cyan.Fprintln(w, "📊 Content Analysis")
	fmt.Fprintln(w, strings.Repeat("=", 50))

	switch result.Outcome {
	case analyzer.OutcomeInsufficientContent:
		color.New(color.FgYellow).Fprintln(w, "Needs more content before it can be analyzed.")
		return
	case analyzer.OutcomeFailed:
		red.Fprintf(w, "Could not analyze content: %s\n", result.Error)
		return
	}

	fmt.Fprint(w, "Overall score: ")
	scoreColor(result.OverallScore).Fprintf(w, "%d/100", result.OverallScore)
	fmt.Fprintf(w, " (%s)\n", result.Feedback.Status)
	p := result.Feedback.Progress
	fmt.Fprintf(w, "Checks: %d passed, %d warning, %d failed (%d%% complete, %s)\n\n",
		p.Passed, p.Warning, p.Failed, p.CompletionPercent, p.Health)

	for _, d := range result.Dimensions {
		scoreColor(d.Score).Fprintf(w, "  %3d", d.Score)
		fmt.Fprintf(w, "  %-18s %s\n", dimension.Label(d.Name), d.Message)
	}

	if len(result.Feedback.QuickWins) > 0 {
		fmt.Fprintln(w)
		cyan.Fprintln(w, "⚡ Quick wins")
		for _, q := range result.Feedback.QuickWins {
			fmt.Fprintf(w, "  • %s (+%d)\n", q.Action, q.PotentialImprovement)
		}
	}
	if len(result.Feedback.PriorityIssues) > 0 {
		fmt.Fprintln(w)
		cyan.Fprintln(w, "🚨 Priority issues")
		for _, i := range result.Feedback.PriorityIssues {
			red.Fprintf(w, "  • [%s] ", i.Severity)
			fmt.Fprintln(w, i.Recommendation)
		}
	}
	if len(set.All) > 0 {
		fmt.Fprintln(w)
		cyan.Fprintln(w, "💡 Top suggestions")
		for n, s := range set.All {
			fmt.Fprintf(w, "  %2d. %s [%s, %s, %s]\n", n+1, s.Title, s.PriorityTier, s.Difficulty, s.EstimatedEffort)
		}
	}
}

func printPreview(w io.Writer, set preview.Set) {
	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow)

	for _, warning := range set.Warnings {
		yellow.Fprintf(w, "⚠️  %s\n", warning)
	}
	for _, c := range set.Channels {
		cyan.Fprintf(w, "%s\n", c.Channel)
		if c.URL != nil {
			color.New(color.FgGreen).Fprintf(w, "  %s\n", c.URL.Text)
		}
		fmt.Fprintf(w, "  %s\n", c.Title.Text)
		fmt.Fprintf(w, "  %s\n", c.Description.Text)
		if c.CardType != "" {
			fmt.Fprintf(w, "  card: %s\n", c.CardType)
		}
		for _, warning := range c.Warnings {
			yellow.Fprintf(w, "  ⚠️  %s\n", warning)
		}
		fmt.Fprintln(w)
	}

	e := set.Effectiveness
	fmt.Fprint(w, "Effectiveness: ")
	scoreColor(e.OverallScore).Fprintf(w, "%d/100", e.OverallScore)
	fmt.Fprintf(w, " (title %d, description %d, click-through %s)\n",
		e.TitleScore, e.DescriptionScore, e.ClickThroughPotential)
	for _, r := range set.Recommendations {
		fmt.Fprintf(w, "  • [%s] %s %s\n", r.Priority, r.Message, r.Action)
	}
}
