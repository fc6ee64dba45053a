package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	goodTitle       = "The Ultimate Guide to Brewing Coffee at Home"
	goodDescription = "Learn how brewing coffee at home can be simple. Discover the right grind, water temperature and timing for a rich cup every single morning."
)

func TestTruncate(t *testing.T) {
	long := strings.Repeat("abcdefghij", 7)
	got := Truncate(long, 60)
	assert.True(t, got.IsTruncated)
	assert.Equal(t, long[:57]+"...", got.Text)
	assert.Equal(t, 70, got.Length)
	assert.Equal(t, 60, got.Budget)

	short := strings.Repeat("x", 40)
	got = Truncate(short, 60)
	assert.False(t, got.IsTruncated)
	assert.Equal(t, short, got.Text)

	exact := strings.Repeat("y", 60)
	assert.False(t, Truncate(exact, 60).IsTruncated)

	got = Truncate(strings.Repeat("é", 61), 60)
	assert.True(t, got.IsTruncated)
	assert.Equal(t, strings.Repeat("é", 57)+"...", got.Text, "characters are runes, not bytes")
}

func TestGenerateChannels(t *testing.T) {
	set := Generate(MetaFields{
		Title:        goodTitle,
		Description:  goodDescription,
		URL:          "https://www.example.com/blog/brewing-coffee",
		Image:        "https://example.com/cup.jpg",
		FocusKeyword: "brewing coffee",
	})

	require.Len(t, set.Channels, 4)
	for i, c := range Channels {
		assert.Equal(t, c.ID, set.Channels[i].Channel)
	}

	desktop, ok := set.Channel(SearchDesktop)
	require.True(t, ok)
	require.NotNil(t, desktop.URL)
	assert.Equal(t, "example.com/blog/brewing-coffee", desktop.URL.DisplayURL)
	assert.False(t, desktop.URL.IsTruncated)
	assert.Empty(t, desktop.Warnings)
	assert.Nil(t, desktop.Image)

	cardA, _ := set.Channel(SocialCardA)
	require.NotNil(t, cardA.Image)
	assert.True(t, cardA.Image.HasImage)
	assert.Equal(t, "1200x630px", cardA.Image.RecommendedSize)
	assert.Equal(t, "example.com/blog/brewing-coffee", cardA.DisplayURL)
	assert.Empty(t, cardA.CardType)

	cardB, _ := set.Channel(SocialCardB)
	assert.Equal(t, CardSummaryLargeImage, cardB.CardType)
	assert.Equal(t, "1200x600px", cardB.Image.RecommendedSize)

	assert.Empty(t, set.Warnings)
	assert.Empty(t, set.Recommendations)
}

func TestGenerateWarnings(t *testing.T) {
	set := Generate(MetaFields{
		Title:       strings.Repeat("word ", 14),
		Description: strings.Repeat("long description ", 12),
		URL:         "https://example.com/",
	})

	desktop, _ := set.Channel(SearchDesktop)
	assert.Equal(t, []string{
		"Title will be truncated in search results",
		"Description will be truncated in search results",
	}, desktop.Warnings)
	assert.Equal(t, "example.com", desktop.URL.DisplayURL, "root path is not appended")

	mobile, _ := set.Channel(SearchMobile)
	assert.Equal(t, []string{"Title may be too long for mobile devices"}, mobile.Warnings)

	cardB, _ := set.Channel(SocialCardB)
	assert.Equal(t, CardSummary, cardB.CardType)
	assert.Equal(t, []string{"No image specified for social sharing"}, cardB.Warnings)
	assert.False(t, cardB.Image.HasImage)
}

func TestGenerateMalformedURL(t *testing.T) {
	for _, raw := range []string{"not a url", "http://[::1", "/relative/path"} {
		set := Generate(MetaFields{Title: goodTitle, Description: goodDescription, URL: raw})

		desktop, _ := set.Channel(SearchDesktop)
		assert.Nil(t, desktop.URL, raw)
		assert.Equal(t, goodTitle, desktop.Title.Text, "the rest of the preview still renders")
		cardA, _ := set.Channel(SocialCardA)
		assert.Empty(t, cardA.DisplayURL, raw)
		assert.Len(t, set.Warnings, 1, raw)
	}

	set := Generate(MetaFields{Title: goodTitle})
	assert.Empty(t, set.Warnings, "a missing URL is not malformed")
}

func TestLongURLTruncatedOnMobile(t *testing.T) {
	set := Generate(MetaFields{URL: "https://example.com/" + strings.Repeat("segment/", 6)})

	desktop, _ := set.Channel(SearchDesktop)
	assert.False(t, desktop.URL.IsTruncated)
	mobile, _ := set.Channel(SearchMobile)
	assert.True(t, mobile.URL.IsTruncated)
	assert.Equal(t, 50, len([]rune(mobile.URL.Text)))
	assert.True(t, strings.HasSuffix(mobile.URL.Text, "..."))
}

func TestAnalyzeFullMarks(t *testing.T) {
	e := Analyze(MetaFields{Title: goodTitle, Description: goodDescription, FocusKeyword: "Brewing Coffee"})
	assert.Equal(t, 100, e.TitleScore)
	assert.Equal(t, 100, e.DescriptionScore)
	assert.Equal(t, 100, e.OverallScore)
	assert.Equal(t, PotentialHigh, e.ClickThroughPotential)
	assert.Equal(t, 8, e.Title.WordCount)
	assert.True(t, e.Description.HasCallToAction)
	assert.Empty(t, e.Title.Feedback)
}

func TestAnalyzeTitleLengthBoundaries(t *testing.T) {
	cases := []struct {
		length int
		want   int
	}{
		{29, 0},
		{30, 25},
		{60, 25},
		{61, 0},
	}
	for _, c := range cases {
		title := strings.Repeat("a", c.length)
		got := Analyze(MetaFields{Title: title}).TitleScore
		assert.Equal(t, c.want, got, "length %d", c.length)
	}
}

func TestAnalyzeDescriptionComponents(t *testing.T) {
	e := Analyze(MetaFields{Description: "Click here to read more about this article."})
	// Short, no keyword, CTA via "read more", generic, readable.
	assert.Equal(t, 20+10, e.DescriptionScore)
	assert.Contains(t, e.Description.Feedback, "Description is too short. Aim for 120-160 characters.")

	e = Analyze(MetaFields{Description: "Plain words only"})
	assert.Equal(t, 15+10, e.DescriptionScore)
}

func TestClickThroughPotential(t *testing.T) {
	assert.Equal(t, PotentialHigh, clickThroughPotential(80))
	assert.Equal(t, PotentialMedium, clickThroughPotential(79))
	assert.Equal(t, PotentialMedium, clickThroughPotential(60))
	assert.Equal(t, PotentialLow, clickThroughPotential(40))
	assert.Equal(t, PotentialVeryLow, clickThroughPotential(39))
}

func TestRecommend(t *testing.T) {
	recs := Recommend(MetaFields{
		Title:        "Short",
		Description:  strings.Repeat("d", 161),
		FocusKeyword: "espresso",
	})
	require.Len(t, recs, 4)
	assert.Equal(t, "title", recs[0].Type)
	assert.Equal(t, "medium", recs[0].Priority)
	assert.Equal(t, "description", recs[1].Type)
	assert.Equal(t, "high", recs[1].Priority)
	assert.Equal(t, `Add "espresso" naturally to your title.`, recs[2].Action)
	assert.Equal(t, "keyword", recs[3].Type)
}

func TestGenerateTrimsPaddedFields(t *testing.T) {
	set := Generate(MetaFields{Title: "  Brewing Coffee at Home  ", Description: "\tLearn to brew.\n"})
	desktop := set.Channels[0]
	assert.Equal(t, "Brewing Coffee at Home", desktop.Title.Text)
	assert.False(t, desktop.Title.IsTruncated)
	assert.Equal(t, 22, desktop.Title.Length)
	assert.Equal(t, "Learn to brew.", desktop.Description.Text)
}
