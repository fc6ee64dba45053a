// Package preview renders how meta fields appear on search and social channels
// and scores how likely they are to earn a click.
package preview

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

const ellipsis = "..."

// Card types for social-card-b.
const (
	CardSummary           = "summary"
	CardSummaryLargeImage = "summary_large_image"
)

// MetaFields is the input to Generate.
type MetaFields struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	Image        string `json:"image"`
	FocusKeyword string `json:"focusKeyword"`
}

// TruncatedText is a field as a channel displays it.
type TruncatedText struct {
	Text        string `json:"text"`
	IsTruncated bool   `json:"isTruncated"`
	Length      int    `json:"length"`
	Budget      int    `json:"optimalLength"`
}

// URLLine is the URL as a search channel displays it.
type URLLine struct {
	Text        string `json:"text"`
	DisplayURL  string `json:"displayUrl"`
	IsTruncated bool   `json:"isTruncated"`
}

// ImageInfo describes the share image of a social channel.
type ImageInfo struct {
	URL             string `json:"url,omitempty"`
	HasImage        bool   `json:"hasImage"`
	RecommendedSize string `json:"recommendedSize"`
}

// ChannelPreview is the rendering of the meta fields on one channel.
type ChannelPreview struct {
	Channel     ChannelID     `json:"channel"`
	Title       TruncatedText `json:"title"`
	Description TruncatedText `json:"description"`
	URL         *URLLine      `json:"url,omitempty"`
	DisplayURL  string        `json:"displayUrl,omitempty"`
	Image       *ImageInfo    `json:"image,omitempty"`
	CardType    string        `json:"cardType,omitempty"`
	Warnings    []string      `json:"warnings"`
}

// Set is the result of Generate.
type Set struct {
	Channels        []ChannelPreview `json:"channels"`
	Effectiveness   Effectiveness    `json:"analysis"`
	Recommendations []Recommendation `json:"recommendations"`
	Warnings        []string         `json:"warnings"`
}

// Channel returns the preview for id.
func (s Set) Channel(id ChannelID) (ChannelPreview, bool) {
	for _, p := range s.Channels {
		if p.Channel == id {
			return p, true
		}
	}
	return ChannelPreview{}, false
}

// Generate builds the preview of fields on every channel. Malformed input degrades
// the affected derived field instead of failing the preview.
func Generate(fields MetaFields) Set {
	fields = normalize(fields)

	displayURL, urlOK := formatDisplayURL(fields.URL)
	var warnings []string
	if fields.URL != "" && !urlOK {
		warnings = append(warnings, "URL could not be parsed; display URL omitted")
	}

	set := Set{
		Channels:        make([]ChannelPreview, 0, len(Channels)),
		Effectiveness:   Analyze(fields),
		Recommendations: Recommend(fields),
		Warnings:        append([]string{}, warnings...),
	}
	for _, c := range Channels {
		set.Channels = append(set.Channels, render(c, fields, displayURL, urlOK))
	}
	return set
}

func normalize(f MetaFields) MetaFields {
	return MetaFields{
		Title:        strings.TrimSpace(f.Title),
		Description:  strings.TrimSpace(f.Description),
		URL:          strings.TrimSpace(f.URL),
		Image:        strings.TrimSpace(f.Image),
		FocusKeyword: strings.TrimSpace(f.FocusKeyword),
	}
}

func render(c Channel, f MetaFields, displayURL string, urlOK bool) ChannelPreview {
	p := ChannelPreview{
		Channel:     c.ID,
		Title:       Truncate(f.Title, c.TitleBudget),
		Description: Truncate(f.Description, c.DescriptionBudget),
		Warnings:    []string{},
	}

	if urlOK {
		if c.URLBudget > 0 {
			line := Truncate(displayURL, c.URLBudget)
			p.URL = &URLLine{Text: line.Text, DisplayURL: displayURL, IsTruncated: line.IsTruncated}
		} else {
			p.DisplayURL = displayURL
		}
	}

	if c.Social {
		p.Image = &ImageInfo{URL: f.Image, HasImage: f.Image != "", RecommendedSize: c.ImageSize}
		if f.Image == "" {
			p.Warnings = append(p.Warnings, "No image specified for social sharing")
		}
	}
	if c.ID == SocialCardB {
		p.CardType = CardSummary
		if f.Image != "" {
			p.CardType = CardSummaryLargeImage
		}
	}

	switch c.ID {
	case SearchDesktop:
		if p.Title.IsTruncated {
			p.Warnings = append(p.Warnings, "Title will be truncated in search results")
		}
		if p.Description.IsTruncated {
			p.Warnings = append(p.Warnings, "Description will be truncated in search results")
		}
	case SearchMobile:
		if p.Title.IsTruncated {
			p.Warnings = append(p.Warnings, "Title may be too long for mobile devices")
		}
	}
	return p
}

// Truncate fits text into budget characters. Text within budget is returned
// unchanged; longer text keeps its first budget-3 characters plus an ellipsis.
func Truncate(text string, budget int) TruncatedText {
	length := utf8.RuneCountInString(text)
	t := TruncatedText{Text: text, Length: length, Budget: budget}
	if length <= budget {
		return t
	}
	keep := budget - len(ellipsis)
	if keep < 0 {
		keep = 0
	}
	t.Text = string([]rune(text)[:keep]) + ellipsis
	t.IsTruncated = true
	return t
}

// formatDisplayURL strips the scheme and a leading www. and appends the path
// unless it is the root. It reports false when raw has no usable host.
func formatDisplayURL(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	display := strings.TrimPrefix(u.Host, "www.")
	if u.Path != "" && u.Path != "/" {
		display += u.Path
	}
	return display, true
}
