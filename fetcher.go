package zark

import "context"

// FetchResult holds the raw response from fetching a URL.
type FetchResult struct {
	Body        []byte
	ContentType string
}

// Fetcher retrieves raw content from URLs.
type Fetcher interface {
	// Fetch performs a single bounded-timeout GET and returns the raw
	// response body. Non-2xx responses are EUNAVAILABLE errors.
	// The context controls cancellation; implementations enforce their
	// own request timeout on top of it.
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}
