// Package mock provides mock implementations of zark interfaces for testing.
package mock

import (
	"context"

	"github.com/zarkhq/zark"
)

var _ zark.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of zark.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*zark.FetchResult, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*zark.FetchResult, error) {
	return f.FetchFn(ctx, url)
}
