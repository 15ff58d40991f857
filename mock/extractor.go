package mock

import "github.com/zarkhq/zark"

var _ zark.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of zark.TextExtractor.
type TextExtractor struct {
	ExtractFn func(html []byte, fallbackTitle string) (*zark.ExtractResult, error)
}

func (e *TextExtractor) Extract(html []byte, fallbackTitle string) (*zark.ExtractResult, error) {
	return e.ExtractFn(html, fallbackTitle)
}

var _ zark.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of zark.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html []byte, baseURL string, limit int) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html []byte, baseURL string, limit int) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL, limit)
}

var _ zark.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of zark.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(title, content string) *zark.Metadata
}

func (e *MetadataExtractor) ExtractMetadata(title, content string) *zark.Metadata {
	return e.ExtractMetadataFn(title, content)
}
