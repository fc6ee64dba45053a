// Package dimension holds the static lookup tables shared by the orchestrator,
// the suggestion engine and the scorers. Every per-dimension constant lives here.
package dimension

import "strings"

// Dimension names produced by the bundled scorers.
const (
	TitleAnalysis    = "title_analysis"
	MetaDescription  = "meta_description"
	KeywordDensity   = "keyword_density"
	ContentLength    = "content_length"
	HeadingStructure = "heading_structure"
	ImageAltTags     = "image_alt_tags"
	InternalLinks    = "internal_links"
	Readability      = "readability"
)

// Impact classes.
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)

const (
	defaultCeiling     = 15
	defaultTargetScore = 85
)

// Names lists the known dimensions in their canonical order.
var Names = []string{
	TitleAnalysis,
	MetaDescription,
	KeywordDensity,
	ContentLength,
	HeadingStructure,
	ImageAltTags,
	InternalLinks,
	Readability,
}

var improvementCeilings = map[string]int{
	KeywordDensity:   25,
	MetaDescription:  30,
	TitleAnalysis:    20,
	HeadingStructure: 15,
	ImageAltTags:     20,
	InternalLinks:    15,
	Readability:      10,
	ContentLength:    25,
}

var impacts = map[string]string{
	TitleAnalysis:    ImpactHigh,
	MetaDescription:  ImpactHigh,
	KeywordDensity:   ImpactHigh,
	HeadingStructure: ImpactMedium,
	ContentLength:    ImpactMedium,
	Readability:      ImpactMedium,
}

// targetScores only lists dimensions that deviate from the default target.
var targetScores = map[string]int{
	Readability:   80,
	InternalLinks: 80,
}

var quickWinActions = map[string]string{
	KeywordDensity:   "Optimize keyword usage in content",
	MetaDescription:  "Write compelling meta description",
	TitleAnalysis:    "Improve title for SEO and readability",
	HeadingStructure: "Add proper heading tags (H1, H2, H3)",
	ImageAltTags:     "Add alt text to images",
	InternalLinks:    "Add relevant internal links",
	Readability:      "Simplify sentences and paragraphs",
	ContentLength:    "Expand content with valuable information",
}

var titles = map[string]string{
	KeywordDensity:   "Quick Keyword Optimization",
	MetaDescription:  "Add Meta Description",
	TitleAnalysis:    "Improve Title Tag",
	HeadingStructure: "Add Heading Tags",
	ImageAltTags:     "Add Image Alt Text",
	InternalLinks:    "Add Internal Links",
	Readability:      "Improve Readability",
	ContentLength:    "Expand Content",
}

var actionSteps = map[string][]string{
	KeywordDensity: {
		"Use your focus keyword naturally in the content",
		"Include variations and related keywords",
		"Aim for 1-3% keyword density",
	},
	MetaDescription: {
		"Write a compelling 150-160 character description",
		"Include your focus keyword naturally",
		"Make it click-worthy and informative",
	},
	TitleAnalysis: {
		"Include your focus keyword in the title",
		"Keep title under 60 characters",
		"Make it compelling and descriptive",
	},
	HeadingStructure: {
		"Add an H1 tag with your main keyword",
		"Use H2 and H3 tags to structure content",
		"Include keywords in subheadings naturally",
	},
	ImageAltTags: {
		"Add descriptive alt text to all images",
		"Include relevant keywords when appropriate",
		"Keep alt text concise and descriptive",
	},
	InternalLinks: {
		"Add 2-3 relevant internal links",
		"Use descriptive anchor text",
		"Link to related content on your site",
	},
	Readability: {
		"Use shorter sentences (under 20 words)",
		"Break up long paragraphs",
		"Use simple, clear language",
	},
	ContentLength: {
		"Add more valuable information",
		"Expand on key points",
		"Aim for at least 300 words",
	},
}

// Effort kinds used by EstimatedEffort.
const (
	EffortQuickWin    = "quick_win"
	EffortPriorityFix = "priority_fix"
)

var efforts = map[string][2]string{
	KeywordDensity:   {"5-10 minutes", "15-20 minutes"},
	MetaDescription:  {"5 minutes", "10 minutes"},
	TitleAnalysis:    {"3 minutes", "5 minutes"},
	HeadingStructure: {"10 minutes", "20 minutes"},
	ImageAltTags:     {"5 minutes per image", "10-15 minutes"},
	InternalLinks:    {"10 minutes", "20 minutes"},
	Readability:      {"15 minutes", "30-45 minutes"},
	ContentLength:    {"20-30 minutes", "45-60 minutes"},
}

type descriptionSet struct {
	low, medium, high string
}

var quickWinDescriptions = map[string]descriptionSet{
	KeywordDensity: {
		low:    "Your focus keyword is rarely used. Include it naturally throughout your content.",
		medium: "Your keyword usage could be optimized. Aim for natural placement throughout the content.",
		high:   "Your keyword usage is good but could be fine-tuned for better distribution.",
	},
	MetaDescription: {
		low:    "Add a compelling meta description to improve click-through rates from search results.",
		medium: "Your meta description needs optimization for better search performance.",
		high:   "Your meta description is good but could be more compelling.",
	},
	TitleAnalysis: {
		low:    "Your title needs your focus keyword and better optimization for search engines.",
		medium: "Improve your title by including keywords and making it more compelling.",
		high:   "Your title is good but has room for optimization.",
	},
}

var priorityRecommendations = map[string][2]string{
	KeywordDensity:   {"Add your focus keyword to the content", "Improve keyword distribution"},
	MetaDescription:  {"Write a compelling meta description under 160 characters", ""},
	TitleAnalysis:    {"Add your focus keyword to the title", "Optimize title length and readability"},
	HeadingStructure: {"Structure your content with proper heading tags", ""},
	ImageAltTags:     {"Add descriptive alt text to all images", ""},
	InternalLinks:    {"Add 2-3 relevant internal links", ""},
	Readability:      {"Use shorter sentences and simpler words", ""},
	ContentLength:    {"Expand content to at least 300 words", ""},
}

var bestPractices = map[string][]string{
	TitleAnalysis: {
		"Place the focus keyword near the start of the title",
		"Keep titles between 30 and 60 characters",
	},
	MetaDescription: {
		"Summarize the page in 120-160 characters",
		"End with a clear call to action",
	},
	KeywordDensity: {
		"Mention the focus keyword in the first paragraph",
		"Keep keyword density between 0.5% and 2.5%",
	},
	ContentLength: {
		"Cover the topic in at least 300 words",
		"Prefer depth over filler",
	},
	HeadingStructure: {
		"Use a single H1 and nest H2/H3 logically",
		"Use descriptive subheadings",
	},
	ImageAltTags: {
		"Describe every meaningful image in its alt text",
	},
	InternalLinks: {
		"Link to two or three related articles on your site",
	},
	Readability: {
		"Keep sentences under 20 words on average",
		"Keep paragraphs under 150 words",
	},
}

// Ceiling returns the maximum points a quick win on name can recover.
func Ceiling(name string) int {
	if c, ok := improvementCeilings[name]; ok {
		return c
	}
	return defaultCeiling
}

// Impact returns the SEO impact class of name.
func Impact(name string) string {
	if i, ok := impacts[name]; ok {
		return i
	}
	return ImpactLow
}

// TargetScore returns the score a dimension should reach to be considered done.
func TargetScore(name string) int {
	if t, ok := targetScores[name]; ok {
		return t
	}
	return defaultTargetScore
}

// QuickWinAction is the one-line action shown next to a quick win.
func QuickWinAction(name string) string {
	if a, ok := quickWinActions[name]; ok {
		return a
	}
	return "Optimize this element"
}

// Title is the human label for suggestions on name.
func Title(name string) string {
	if t, ok := titles[name]; ok {
		return t
	}
	return "Optimization Opportunity"
}

// ActionSteps returns a copy of the concrete steps for improving name.
func ActionSteps(name string) []string {
	steps, ok := actionSteps[name]
	if !ok {
		return []string{"Optimize this element for better SEO"}
	}
	return append([]string(nil), steps...)
}

// EstimatedEffort returns a time estimate for the given effort kind.
func EstimatedEffort(name, kind string) string {
	e, ok := efforts[name]
	if !ok {
		return "10-15 minutes"
	}
	if kind == EffortPriorityFix {
		return e[1]
	}
	return e[0]
}

// Description picks the score-banded explanation for name.
func Description(name string, score int) string {
	set, ok := quickWinDescriptions[name]
	switch {
	case score < 30:
		if ok {
			return set.low
		}
		return "This element needs immediate attention for better SEO."
	case score < 60:
		if ok {
			return set.medium
		}
		return "This element can be easily improved for better SEO."
	default:
		if ok {
			return set.high
		}
		return "This element is good but has potential for optimization."
	}
}

// PriorityRecommendation returns the fix for a dimension scoring below 40.
func PriorityRecommendation(name string, score int) string {
	r, ok := priorityRecommendations[name]
	if !ok {
		return "Improve this SEO element"
	}
	if score >= 20 && r[1] != "" {
		return r[1]
	}
	return r[0]
}

// BestPractices returns static guidance for name.
func BestPractices(name string) []string {
	if bp, ok := bestPractices[name]; ok {
		return append([]string(nil), bp...)
	}
	return []string{"Follow SEO best practices for " + Label(name)}
}

// Label turns a dimension name into words.
func Label(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
