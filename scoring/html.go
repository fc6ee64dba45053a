// Package scoring provides the per-dimension scorers plugged into the analyzer.
package scoring

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/seo-optimizer/backend/analyzer"
	"github.com/seo-optimizer/backend/dimension"
)

// DefaultWeights is the contribution of each dimension to the overall score.
var DefaultWeights = map[string]float64{
	dimension.TitleAnalysis:    0.15,
	dimension.MetaDescription:  0.15,
	dimension.KeywordDensity:   0.15,
	dimension.ContentLength:    0.15,
	dimension.HeadingStructure: 0.1,
	dimension.ImageAltTags:     0.1,
	dimension.InternalLinks:    0.1,
	dimension.Readability:      0.1,
}

// HTML scores editor content by parsing the body as HTML.
type HTML struct {
	weights map[string]float64
}

// NewHTML creates an HTML scorer using DefaultWeights.
func NewHTML() *HTML {
	return &HTML{weights: DefaultWeights}
}

// page is the parsed form of a snapshot shared by the dimension checks.
type page struct {
	snapshot analyzer.ContentSnapshot
	doc      *goquery.Document
	text     string
	words    []string
}

// Score implements analyzer.Scorer.
func (h *HTML) Score(ctx context.Context, snapshot analyzer.ContentSnapshot) (analyzer.Scores, error) {
	if err := ctx.Err(); err != nil {
		return analyzer.Scores{}, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snapshot.Content))
	if err != nil {
		return analyzer.Scores{}, fmt.Errorf("failed to parse content: %w", err)
	}
	text := visibleText(doc.Find("body"))
	p := &page{snapshot: snapshot, doc: doc, text: text, words: words(text)}

	dims := []analyzer.RawDimension{
		analyzeTitle(p),
		analyzeMetaDescription(p),
		analyzeKeywordDensity(p),
		analyzeContentLength(p),
		analyzeHeadings(p),
		analyzeImages(p),
		analyzeLinks(p),
		analyzeReadability(p),
	}

	return analyzer.Scores{
		Overall:    h.overall(dims),
		Dimensions: dims,
	}, nil
}

func (h *HTML) overall(dims []analyzer.RawDimension) int {
	total, weight := 0.0, 0.0
	for _, d := range dims {
		w, ok := h.weights[d.Name]
		if !ok {
			continue
		}
		total += float64(d.Score) * w
		weight += w
	}
	if weight == 0 {
		return 0
	}
	return clamp(int(math.Round(total / weight)))
}

func analyzeTitle(p *page) analyzer.RawDimension {
	title := p.snapshot.Title
	keyword := p.snapshot.FocusKeyword
	length := utf8.RuneCountInString(title)
	d := analyzer.RawDimension{
		Name:    dimension.TitleAnalysis,
		Details: map[string]interface{}{"length": length},
	}
	if length == 0 {
		d.Message = "No title specified"
		return d
	}

	score := 0
	switch {
	case length >= 30 && length <= 60:
		score += 50
		d.Message = "Title length is optimal"
	case length < 30:
		score += 25
		d.Message = "Title is too short (should be 30-60 characters)"
	default:
		score += 35
		d.Message = "Title is too long (should be 30-60 characters)"
	}

	switch {
	case keyword == "":
		score += 15
	case dimension.ContainsFold(title, keyword):
		score += 30
		d.Details["keyword_present"] = true
	default:
		d.Details["keyword_present"] = false
		d.Message = "Focus keyword not found in title"
	}

	if dimension.ContainsAnyFold(title, dimension.PowerWords) {
		score += 20
		d.Details["power_words"] = true
	}

	d.Score = clamp(score)
	return d
}

func analyzeMetaDescription(p *page) analyzer.RawDimension {
	desc := p.snapshot.Excerpt
	keyword := p.snapshot.FocusKeyword
	length := utf8.RuneCountInString(desc)
	d := analyzer.RawDimension{
		Name:    dimension.MetaDescription,
		Details: map[string]interface{}{"length": length},
	}
	if length == 0 {
		d.Message = "No meta description specified"
		return d
	}

	score := 0
	switch {
	case length >= 120 && length <= 160:
		score += 70
		d.Message = "Meta description length is optimal"
	case length < 120:
		score += 40
		d.Message = "Meta description is too short (should be 120-160 characters)"
	default:
		score += 50
		d.Message = "Meta description is too long (should be 120-160 characters)"
	}

	switch {
	case keyword == "":
		score += 15
	case dimension.ContainsFold(desc, keyword):
		score += 30
	default:
		d.Message = "Focus keyword not found in meta description"
	}

	d.Score = clamp(score)
	return d
}

func analyzeKeywordDensity(p *page) analyzer.RawDimension {
	d := analyzer.RawDimension{Name: dimension.KeywordDensity}
	keyword := p.snapshot.FocusKeyword
	if keyword == "" {
		d.Message = "No focus keyword set"
		return d
	}
	if len(p.words) == 0 {
		d.Message = "No content to analyze"
		return d
	}

	occurrences := countPhrase(p.words, keyword)
	density := float64(occurrences*len(words(keyword))) / float64(len(p.words)) * 100
	d.Details = map[string]interface{}{
		"occurrences": occurrences,
		"density":     math.Round(density*100) / 100,
	}

	switch {
	case occurrences == 0:
		d.Score = 10
		d.Message = "Focus keyword does not appear in the content"
	case density < 0.5:
		d.Score = 40
		d.Message = "Keyword density is too low"
	case density <= 2.5:
		d.Score = 100
		d.Message = "Keyword density is optimal"
	case density <= 3.5:
		d.Score = 60
		d.Message = "Keyword density is slightly high"
	default:
		d.Score = 30
		d.Message = "Keyword density is too high and may look like stuffing"
	}
	return d
}

func analyzeContentLength(p *page) analyzer.RawDimension {
	count := len(p.words)
	d := analyzer.RawDimension{
		Name:    dimension.ContentLength,
		Details: map[string]interface{}{"word_count": count},
	}
	switch {
	case count >= 1000:
		d.Score, d.Message = 100, "Content length is excellent"
	case count >= 600:
		d.Score, d.Message = 85, "Content length is good"
	case count >= 300:
		d.Score, d.Message = 70, "Content meets the minimum length"
	case count >= 150:
		d.Score, d.Message = 45, "Add more content (aim for at least 300 words)"
	default:
		d.Score, d.Message = 20, "Content is too thin (aim for at least 300 words)"
	}
	return d
}

func analyzeHeadings(p *page) analyzer.RawDimension {
	h1 := p.doc.Find("h1").Length()
	h2 := p.doc.Find("h2").Length()
	h3 := p.doc.Find("h3").Length()
	d := analyzer.RawDimension{
		Name:    dimension.HeadingStructure,
		Details: map[string]interface{}{"h1": h1, "h2": h2, "h3": h3},
	}

	score := 0
	if h1 <= 1 {
		score += 20
	}
	if h2 > 0 {
		score += 40
	}
	if h3 > 0 {
		score += 20
	}

	keyword := p.snapshot.FocusKeyword
	if keyword != "" {
		found := false
		p.doc.Find("h2, h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			found = dimension.ContainsFold(s.Text(), keyword)
			return !found
		})
		if found {
			score += 20
		}
	} else if h2 > 0 {
		score += 10
	}

	switch {
	case h1 > 1:
		d.Message = "Multiple H1 headings found - consider using only one"
	case h2 == 0:
		d.Message = "Add H2 subheadings to structure your content"
	case h3 == 0:
		d.Message = "Consider H3 subheadings for longer sections"
	default:
		d.Message = "Heading structure looks good"
	}

	d.Score = clamp(score)
	return d
}

func analyzeImages(p *page) analyzer.RawDimension {
	images := p.doc.Find("img")
	total := images.Length()
	d := analyzer.RawDimension{Name: dimension.ImageAltTags}
	if total == 0 {
		d.Score = 50
		d.Message = "No images found"
		d.Details = map[string]interface{}{"images": 0, "with_alt": 0}
		return d
	}

	withAlt := 0
	images.Each(func(_ int, s *goquery.Selection) {
		if alt, ok := s.Attr("alt"); ok && strings.TrimSpace(alt) != "" {
			withAlt++
		}
	})
	d.Details = map[string]interface{}{"images": total, "with_alt": withAlt}
	d.Score = clamp(int(math.Round(float64(withAlt) / float64(total) * 100)))
	if withAlt < total {
		d.Message = fmt.Sprintf("%d of %d images are missing alt text", total-withAlt, total)
	} else {
		d.Message = "All images have alt text"
	}
	return d
}

func analyzeLinks(p *page) analyzer.RawDimension {
	host := ""
	if u, err := url.Parse(p.snapshot.URL); err == nil {
		host = strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	}

	internal, external := 0, 0
	p.doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") ||
			strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") {
			return
		}
		u, err := url.Parse(href)
		if err != nil {
			return
		}
		linkHost := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
		if linkHost == "" || (host != "" && linkHost == host) {
			internal++
		} else {
			external++
		}
	})

	d := analyzer.RawDimension{
		Name:    dimension.InternalLinks,
		Details: map[string]interface{}{"internal": internal, "external": external},
	}
	switch {
	case internal == 0:
		d.Score, d.Message = 20, "No internal links found"
	case internal == 1:
		d.Score, d.Message = 50, "Add more internal links (aim for at least 3)"
	case internal == 2:
		d.Score, d.Message = 75, "Add one more internal link"
	default:
		d.Score, d.Message = 100, "Internal linking looks good"
	}
	return d
}

func analyzeReadability(p *page) analyzer.RawDimension {
	d := analyzer.RawDimension{Name: dimension.Readability}
	sents := sentences(p.text)
	if len(sents) == 0 || len(p.words) == 0 {
		d.Message = "No sentences to analyze"
		return d
	}

	avg := float64(len(p.words)) / float64(len(sents))
	score := 45
	switch {
	case avg <= 15:
		score = 90
	case avg <= 20:
		score = 75
	case avg <= 25:
		score = 60
	}

	longParagraphs := 0
	p.doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if len(words(s.Text())) > 150 {
			longParagraphs++
		}
	})
	score -= 10 * longParagraphs

	d.Details = map[string]interface{}{
		"avg_sentence_words": math.Round(avg*10) / 10,
		"long_paragraphs":    longParagraphs,
	}
	if avg > 20 {
		d.Message = "Use shorter sentences (under 20 words)"
	} else if longParagraphs > 0 {
		d.Message = "Break up long paragraphs"
	} else {
		d.Message = "Content is easy to read"
	}
	d.Score = clamp(score)
	return d
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
