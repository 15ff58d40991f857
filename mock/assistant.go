package mock

import (
	"context"

	"github.com/zarkhq/zark"
)

var _ zark.Ingestor = (*Ingestor)(nil)

// Ingestor is a mock implementation of zark.Ingestor.
type Ingestor struct {
	IngestFn func(ctx context.Context, seedURL string, maxDepth int) (int, error)
}

func (i *Ingestor) Ingest(ctx context.Context, seedURL string, maxDepth int) (int, error) {
	return i.IngestFn(ctx, seedURL, maxDepth)
}

var _ zark.ContextBuilder = (*ContextBuilder)(nil)

// ContextBuilder is a mock implementation of zark.ContextBuilder.
type ContextBuilder struct {
	BuildContextFn func(ctx context.Context, query string) (string, []*zark.KnowledgeRecord, error)
}

func (b *ContextBuilder) BuildContext(ctx context.Context, query string) (string, []*zark.KnowledgeRecord, error) {
	return b.BuildContextFn(ctx, query)
}
