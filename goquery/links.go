package goquery

import (
	"bytes"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/zarkhq/zark"
)

// Ensure LinkExtractor implements zark.LinkExtractor at compile time.
var _ zark.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor extracts outbound link targets from HTML.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks returns up to limit link targets resolved against baseURL.
// The limit applies to the page's anchors in document order; anchors whose
// href fails to resolve consume a slot but produce no link. Scope filtering
// (scheme, host) is the caller's concern.
func (l *LinkExtractor) ExtractLinks(html []byte, baseURL string, limit int) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, zark.Errorf(zark.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, zark.Errorf(zark.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []string
	taken := 0
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if limit > 0 && taken >= limit {
			return false
		}

		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return true
		}
		taken++

		ref, err := url.Parse(href)
		if err != nil {
			return true
		}

		links = append(links, base.ResolveReference(ref).String())
		return true
	})

	return links, nil
}
