package suggest

import "github.com/seo-optimizer/backend/dimension"

// template describes a suggestion emitted when a dimension scores below threshold.
type template struct {
	dimension   string
	threshold   int
	kind        string
	title       string
	description string
	tier        string
	difficulty  string
	effort      string
	steps       func(score int) []string
}

func fixedSteps(steps ...string) func(int) []string {
	return func(int) []string { return append([]string(nil), steps...) }
}

var contentStrategyTemplates = []template{
	{
		dimension:   dimension.ContentLength,
		threshold:   60,
		kind:        "content_expansion",
		title:       "Expand Your Content",
		description: "Your content could benefit from additional depth and detail.",
		tier:        TierHigh,
		difficulty:  DifficultyHard,
		effort:      "45-60 minutes",
		steps: fixedSteps(
			"Add more detailed explanations of key concepts",
			"Include relevant examples and case studies",
			"Add frequently asked questions section",
			"Provide step-by-step instructions where appropriate",
			"Include relevant statistics and data points",
		),
	},
	{
		dimension:   dimension.KeywordDensity,
		threshold:   80,
		kind:        "keyword_optimization",
		title:       "Keyword Optimization Strategy",
		description: "Optimize your keyword usage for better search visibility.",
		tier:        TierHigh,
		difficulty:  DifficultyMedium,
		effort:      "15-20 minutes",
		steps: func(score int) []string {
			if score < 40 {
				return []string{
					"Include your focus keyword in the first paragraph",
					"Use keyword variations throughout the content",
					"Add related keywords and semantic terms",
					"Ensure natural keyword placement",
				}
			}
			return []string{
				"Fine-tune keyword density for optimal distribution",
				"Add long-tail keyword variations",
				"Include semantically related keywords",
			}
		},
	},
	{
		dimension:   dimension.HeadingStructure,
		threshold:   70,
		kind:        "content_structure",
		title:       "Improve Content Structure",
		description: "Better content organization will improve readability and SEO.",
		tier:        TierMedium,
		difficulty:  DifficultyMedium,
		effort:      "20 minutes",
		steps: fixedSteps(
			"Use a clear H1 tag for your main title",
			"Add H2 tags for main section headings",
			"Use H3 tags for subsections",
			"Create logical content hierarchy",
			"Include a table of contents for longer articles",
		),
	},
}

var technicalTemplates = []template{
	{
		dimension:   dimension.MetaDescription,
		threshold:   80,
		kind:        "meta_optimization",
		title:       "Meta Description Optimization",
		description: "Improve your meta description for better click-through rates.",
		tier:        TierHigh,
		difficulty:  DifficultyEasy,
		effort:      "10 minutes",
		steps: func(score int) []string {
			if score < 40 {
				return []string{
					"Write a meta description (currently missing)",
					"Keep it between 150-160 characters",
					"Include your focus keyword naturally",
					"Make it compelling and action-oriented",
				}
			}
			return []string{
				"Optimize length to stay within character limits",
				"Improve keyword placement",
				"Make it more compelling and click-worthy",
				"Include a call-to-action if appropriate",
			}
		},
	},
	{
		dimension:   dimension.TitleAnalysis,
		threshold:   80,
		kind:        "title_optimization",
		title:       "Title Tag Optimization",
		description: "Optimize your title tag for better search rankings.",
		tier:        TierHigh,
		difficulty:  DifficultyEasy,
		effort:      "5 minutes",
		steps: fixedSteps(
			"Include your focus keyword in the title",
			"Keep title under 60 characters for full display",
			"Make it compelling and click-worthy",
			"Ensure it accurately describes the content",
			"Consider using power words to increase appeal",
		),
	},
	{
		dimension:   dimension.ImageAltTags,
		threshold:   70,
		kind:        "image_optimization",
		title:       "Image SEO Optimization",
		description: "Add alt text to images for better accessibility and SEO.",
		tier:        TierMedium,
		difficulty:  DifficultyEasy,
		effort:      "10-15 minutes",
		steps: fixedSteps(
			"Add descriptive alt text to all images",
			"Include relevant keywords when natural",
			"Keep alt text under 125 characters",
			"Describe the image content accurately",
			"Use proper file names for images before uploading",
		),
	},
}
