package preview

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/seo-optimizer/backend/dimension"
)

// Click-through potential bands.
const (
	PotentialHigh    = "high"
	PotentialMedium  = "medium"
	PotentialLow     = "low"
	PotentialVeryLow = "very_low"
)

const clarityPunctuation = "!?.,;:"

// TitleAnalysis breaks down the title score.
type TitleAnalysis struct {
	Score         int      `json:"score"`
	Feedback      []string `json:"feedback"`
	Length        int      `json:"length"`
	WordCount     int      `json:"wordCount"`
	HasKeyword    bool     `json:"hasKeyword"`
	HasPowerWords bool     `json:"hasPowerWords"`
}

// DescriptionAnalysis breaks down the description score.
type DescriptionAnalysis struct {
	Score            int      `json:"score"`
	Feedback         []string `json:"feedback"`
	Length           int      `json:"length"`
	HasKeyword       bool     `json:"hasKeyword"`
	HasCallToAction  bool     `json:"hasCallToAction"`
	ReadabilityScore int      `json:"readabilityScore"`
}

// Effectiveness is the channel-independent score of a title and description pair.
type Effectiveness struct {
	TitleScore            int                 `json:"titleScore"`
	DescriptionScore      int                 `json:"descriptionScore"`
	OverallScore          int                 `json:"overallScore"`
	ClickThroughPotential string              `json:"clickThroughPotential"`
	Title                 TitleAnalysis       `json:"titleAnalysis"`
	Description           DescriptionAnalysis `json:"descriptionAnalysis"`
}

// Analyze scores the meta fields.
func Analyze(f MetaFields) Effectiveness {
	f = normalize(f)
	title := analyzeTitle(f.Title, f.FocusKeyword)
	desc := analyzeDescription(f.Description, f.FocusKeyword)
	overall := int(math.Round(float64(title.Score+desc.Score) / 2))
	return Effectiveness{
		TitleScore:            title.Score,
		DescriptionScore:      desc.Score,
		OverallScore:          overall,
		ClickThroughPotential: clickThroughPotential(overall),
		Title:                 title,
		Description:           desc,
	}
}

func analyzeTitle(title, keyword string) TitleAnalysis {
	a := TitleAnalysis{
		Length:        utf8.RuneCountInString(title),
		WordCount:     wordCount(title),
		HasKeyword:    dimension.ContainsFold(title, keyword),
		HasPowerWords: dimension.ContainsAnyFold(title, dimension.PowerWords),
		Feedback:      []string{},
	}

	switch {
	case a.Length >= 30 && a.Length <= 60:
		a.Score += 25
	case a.Length < 30:
		a.Feedback = append(a.Feedback, "Title is too short. Aim for 30-60 characters.")
	default:
		a.Feedback = append(a.Feedback, "Title is too long and will be truncated in search results.")
	}

	if a.HasKeyword {
		a.Score += 25
	} else if keyword != "" {
		a.Feedback = append(a.Feedback, "Consider including your focus keyword in the title.")
	}

	if a.WordCount >= 4 && a.WordCount <= 12 {
		a.Score += 20
	} else {
		a.Feedback = append(a.Feedback, "Title should contain 4-12 words for optimal impact.")
	}

	if a.HasPowerWords {
		a.Score += 15
	} else {
		a.Feedback = append(a.Feedback, "Consider adding compelling words to increase click-through rates.")
	}

	if isClear(title, a.WordCount) {
		a.Score += 15
	}
	return a
}

func analyzeDescription(desc, keyword string) DescriptionAnalysis {
	a := DescriptionAnalysis{
		Length:           utf8.RuneCountInString(desc),
		HasKeyword:       dimension.ContainsFold(desc, keyword),
		HasCallToAction:  dimension.ContainsAnyFold(desc, dimension.CallsToAction),
		ReadabilityScore: readabilityScore(desc),
		Feedback:         []string{},
	}

	switch {
	case a.Length >= 120 && a.Length <= 160:
		a.Score += 30
	case a.Length < 120:
		a.Feedback = append(a.Feedback, "Description is too short. Aim for 120-160 characters.")
	default:
		a.Feedback = append(a.Feedback, "Description is too long and will be truncated.")
	}

	if a.HasKeyword {
		a.Score += 25
	} else if keyword != "" {
		a.Feedback = append(a.Feedback, "Include your focus keyword in the meta description.")
	}

	if a.HasCallToAction {
		a.Score += 20
	} else {
		a.Feedback = append(a.Feedback, "Consider adding a call-to-action to encourage clicks.")
	}

	if !dimension.ContainsAnyFold(desc, dimension.GenericPhrases) {
		a.Score += 15
	}

	if meanSentenceWords(desc) <= 20 {
		a.Score += 10
	}
	return a
}

func clickThroughPotential(score int) string {
	switch {
	case score >= 80:
		return PotentialHigh
	case score >= 60:
		return PotentialMedium
	case score >= 40:
		return PotentialLow
	default:
		return PotentialVeryLow
	}
}

// isClear allows at most two punctuation marks and requires three words.
func isClear(title string, words int) bool {
	marks := 0
	for _, r := range title {
		if strings.ContainsRune(clarityPunctuation, r) {
			marks++
		}
	}
	return marks <= 2 && words >= 3
}

// wordCount counts runs of letters, apostrophes and hyphens.
func wordCount(text string) int {
	return len(strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\'' && r != '-'
	}))
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// meanSentenceWords divides the word count by the number of non-empty pieces
// between sentence terminators.
func meanSentenceWords(text string) float64 {
	pieces := len(strings.FieldsFunc(text, isTerminator))
	if pieces < 1 {
		pieces = 1
	}
	return float64(wordCount(text)) / float64(pieces)
}

func readabilityScore(text string) int {
	runs, inRun := 0, false
	for _, r := range text {
		if isTerminator(r) {
			if !inRun {
				runs++
			}
			inRun = true
			continue
		}
		inRun = false
	}
	if runs < 1 {
		runs = 1
	}

	avg := float64(wordCount(text)) / float64(runs)
	switch {
	case avg <= 15:
		return 90
	case avg <= 20:
		return 75
	case avg <= 25:
		return 60
	default:
		return 45
	}
}
