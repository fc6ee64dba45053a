package preview

import (
	"fmt"
	"unicode/utf8"

	"github.com/seo-optimizer/backend/dimension"
)

// Recommendation is a concrete edit to the meta fields.
type Recommendation struct {
	Type     string `json:"type"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
	Action   string `json:"action"`
}

// Recommend lists length and keyword fixes for the meta fields.
func Recommend(f MetaFields) []Recommendation {
	f = normalize(f)
	recs := []Recommendation{}

	switch n := utf8.RuneCountInString(f.Title); {
	case n > 60:
		recs = append(recs, Recommendation{
			Type:     "title",
			Priority: "high",
			Message:  "Shorten your title to under 60 characters to prevent truncation.",
			Action:   "Edit the title to be more concise while keeping the main keyword.",
		})
	case n < 30:
		recs = append(recs, Recommendation{
			Type:     "title",
			Priority: "medium",
			Message:  "Your title could be longer to provide more context.",
			Action:   "Expand the title with descriptive words or benefits.",
		})
	}

	switch n := utf8.RuneCountInString(f.Description); {
	case n > 160:
		recs = append(recs, Recommendation{
			Type:     "description",
			Priority: "high",
			Message:  "Shorten your meta description to under 160 characters.",
			Action:   "Remove less important words while keeping the core message.",
		})
	case n < 120:
		recs = append(recs, Recommendation{
			Type:     "description",
			Priority: "medium",
			Message:  "Your meta description could be longer and more descriptive.",
			Action:   "Add more compelling details about your content.",
		})
	}

	if f.FocusKeyword == "" {
		return recs
	}
	if !dimension.ContainsFold(f.Title, f.FocusKeyword) {
		recs = append(recs, Recommendation{
			Type:     "keyword",
			Priority: "high",
			Message:  "Include your focus keyword in the title.",
			Action:   fmt.Sprintf("Add %q naturally to your title.", f.FocusKeyword),
		})
	}
	if !dimension.ContainsFold(f.Description, f.FocusKeyword) {
		recs = append(recs, Recommendation{
			Type:     "keyword",
			Priority: "high",
			Message:  "Include your focus keyword in the meta description.",
			Action:   fmt.Sprintf("Add %q naturally to your description.", f.FocusKeyword),
		})
	}
	return recs
}
