package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seo-optimizer/backend/analyzer"
	"github.com/seo-optimizer/backend/config"
	"github.com/seo-optimizer/backend/suggest"
)

type analyzeOptions struct {
	file       string
	title      string
	excerpt    string
	keyword    string
	url        string
	output     string
	configPath string
}

// NewAnalyzeCmd runs a one-shot analysis of a content file.
func NewAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze --file FILE [flags]",
		Short: "Analyze a content file and print suggestions",
		Long: `Analyze a content file once and print its score, feedback and ranked suggestions.

Examples:
  # Analyze an HTML draft with a focus keyword
  seo-optimizer analyze --file draft.html --title "Brewing Coffee at Home" --keyword "brewing coffee"

  # Read the body from stdin and print JSON
  cat draft.html | seo-optimizer analyze --file - -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Content file to analyze (- for stdin)")
	cmd.Flags().StringVar(&opts.title, "title", "", "Post title")
	cmd.Flags().StringVar(&opts.excerpt, "excerpt", "", "Meta description")
	cmd.Flags().StringVarP(&opts.keyword, "keyword", "k", "", "Focus keyword")
	cmd.Flags().StringVar(&opts.url, "url", "", "Canonical URL")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputHuman, "Output format (human, json)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to YAML config file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func readContent(cmd *cobra.Command, file string) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return "", fmt.Errorf("failed to open content file: %w", err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read content: %w", err)
	}
	return string(data), nil
}

func runAnalyze(cmd *cobra.Command, opts *analyzeOptions) error {
	if err := checkOutput(opts.output); err != nil {
		return err
	}
	content, err := readContent(cmd, opts.file)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	a := analyzer.New(newScorer(cfg.Scoring, zap.NewNop()), analyzer.Options{
		MinContentLength: cfg.Analysis.MinContentLength,
		CacheCapacity:    1,
	})

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
	s.Suffix = fmt.Sprintf(" Scoring content (%s scorer)...", cfg.Scoring.Provider)
	if opts.output == outputHuman {
		s.Start()
	}
	result := a.Analyze(cmd.Context(), analyzer.ContentSnapshot{
		Content:      content,
		Title:        opts.title,
		Excerpt:      opts.excerpt,
		FocusKeyword: opts.keyword,
		URL:          opts.url,
	})
	s.Stop()
	suggestions := suggest.Generate(result)

	out := cmd.OutOrStdout()
	if opts.output == outputJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(struct {
			Analysis    analyzer.AnalysisResult `json:"analysis"`
			Suggestions suggest.Set             `json:"suggestions"`
		}{result, suggestions}); err != nil {
			return err
		}
	} else {
		printAnalysis(out, result, suggestions)
	}

	if result.Outcome == analyzer.OutcomeFailed {
		return fmt.Errorf("analysis failed: %w", result.Err)
	}
	return nil
}
