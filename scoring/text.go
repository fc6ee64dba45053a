package scoring

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

var sentenceBreak = regexp.MustCompile(`[.!?]+`)

// visibleText concatenates the text nodes below sel, separating blocks with spaces
// and skipping script and style elements.
func visibleText(sel *goquery.Selection) string {
	var b strings.Builder
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "#text":
			b.WriteString(s.Text())
			b.WriteByte(' ')
		case "script", "style", "noscript", "#comment":
		default:
			b.WriteString(visibleText(s))
		}
	})
	return b.String()
}

// words splits text into lowercase words made of letters, digits, apostrophes and hyphens.
func words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '-'
	})
}

// sentences returns the non-blank sentences of text.
func sentences(text string) []string {
	parts := sentenceBreak.Split(text, -1)
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// countPhrase counts whole-word occurrences of phrase within ws.
func countPhrase(ws []string, phrase string) int {
	target := words(phrase)
	if len(target) == 0 || len(ws) < len(target) {
		return 0
	}
	count := 0
	for i := 0; i+len(target) <= len(ws); i++ {
		match := true
		for j, t := range target {
			if ws[i+j] != t {
				match = false
				break
			}
		}
		if match {
			count++
		}
	}
	return count
}
