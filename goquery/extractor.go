// Package goquery provides goquery-based implementations of
// zark.TextExtractor and zark.LinkExtractor.
package goquery

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/zarkhq/zark"
)

// whitespaceRE matches runs of whitespace, including newlines.
var whitespaceRE = regexp.MustCompile(`\s+`)

// Ensure Extractor implements zark.TextExtractor at compile time.
var _ zark.TextExtractor = (*Extractor)(nil)

// Extractor extracts a normalized title and plain text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the markup, removes script and style elements, and returns
// the title plus the remaining visible text with whitespace collapsed.
func (e *Extractor) Extract(html []byte, fallbackTitle string) (*zark.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, zark.Errorf(zark.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = fallbackTitle
	}

	// Script and style content must never leak into the extracted text.
	doc.Find("script, style, noscript").Remove()

	text := strings.TrimSpace(whitespaceRE.ReplaceAllString(doc.Text(), " "))

	return &zark.ExtractResult{
		Title: title,
		Text:  text,
	}, nil
}
