package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seo-optimizer/backend/config"
)

const draft = `<h2>Brewing coffee at home</h2>
<p>Brewing coffee at home is simple. Grind fresh beans just before you brew and use clean, filtered water.</p>
<h2>Choosing a method</h2>
<p>A pour-over gives a clean cup while a French press gives a heavier body. Pick the one you enjoy.</p>`

func execute(t *testing.T, c *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetIn(strings.NewReader(stdin))
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func writeDraft(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "draft.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAnalyzeJSON(t *testing.T) {
	t.Setenv("SCORING_PROVIDER", config.ProviderLocal)

	out, err := execute(t, NewAnalyzeCmd(), "",
		"--file", writeDraft(t, draft),
		"--title", "How to Brew Coffee at Home",
		"--keyword", "brewing coffee",
		"-o", "json")
	require.NoError(t, err)

	var resp struct {
		Analysis struct {
			Outcome      string `json:"outcome"`
			OverallScore int    `json:"overallScore"`
		} `json:"analysis"`
		Suggestions struct {
			All []json.RawMessage `json:"allSuggestions"`
		} `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "analyzed", resp.Analysis.Outcome)
	assert.Greater(t, resp.Analysis.OverallScore, 0)
	assert.LessOrEqual(t, len(resp.Suggestions.All), 10)
}

func TestAnalyzeStdinHuman(t *testing.T) {
	t.Setenv("SCORING_PROVIDER", config.ProviderLocal)

	out, err := execute(t, NewAnalyzeCmd(), draft, "--file", "-", "--keyword", "brewing coffee")
	require.NoError(t, err)
	assert.Contains(t, out, "Content Analysis")
	assert.Contains(t, out, "Overall score:")
}

func TestAnalyzeInsufficientContent(t *testing.T) {
	t.Setenv("SCORING_PROVIDER", config.ProviderLocal)

	out, err := execute(t, NewAnalyzeCmd(), "", "--file", writeDraft(t, "short"))
	require.NoError(t, err)
	assert.Contains(t, out, "Needs more content")
}

func TestAnalyzeErrors(t *testing.T) {
	_, err := execute(t, NewAnalyzeCmd(), "")
	assert.Error(t, err, "--file is required")

	_, err = execute(t, NewAnalyzeCmd(), "", "--file", filepath.Join(t.TempDir(), "missing.html"))
	assert.ErrorContains(t, err, "failed to open content file")

	_, err = execute(t, NewAnalyzeCmd(), "", "--file", "-", "-o", "yaml")
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestPreviewJSON(t *testing.T) {
	out, err := execute(t, NewPreviewCmd(), "",
		"--title", strings.Repeat("a", 70),
		"--description", "Learn how to brew coffee at home.",
		"--url", "https://www.example.com/coffee",
		"-o", "json")
	require.NoError(t, err)

	var resp struct {
		Channels []struct {
			Channel  string   `json:"channel"`
			Warnings []string `json:"warnings"`
		} `json:"channels"`
		Warnings []string `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Channels, 4)
	assert.Equal(t, "search-desktop", resp.Channels[0].Channel)
	assert.Empty(t, resp.Warnings)
	assert.Contains(t, resp.Channels[2].Warnings, "No image specified for social sharing")
	assert.Contains(t, resp.Channels[3].Warnings, "No image specified for social sharing")
	assert.NotContains(t, resp.Channels[0].Warnings, "No image specified for social sharing")
}

func TestPreviewHuman(t *testing.T) {
	out, err := execute(t, NewPreviewCmd(), "",
		"--title", "Brewing Coffee at Home",
		"--url", "https://example.com/coffee")
	require.NoError(t, err)
	assert.Contains(t, out, "search-desktop")
	assert.Contains(t, out, "example.com")
	assert.Contains(t, out, "Effectiveness:")
}
