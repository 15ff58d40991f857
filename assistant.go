package zark

import "context"

// Ingestor drives a bounded recursive crawl from a seed URL.
type Ingestor interface {
	// Ingest crawls from seedURL up to maxDepth levels deep and upserts a
	// record per meaningful page. It returns the number of pages stored;
	// zero is a valid outcome (e.g., an unreachable seed). Only store
	// failures are returned as errors; per-page fetch and extraction
	// failures terminate their own branch.
	Ingest(ctx context.Context, seedURL string, maxDepth int) (int, error)
}

// ContextBuilder assembles a grounding context block for a query.
type ContextBuilder interface {
	// BuildContext searches stored records for the query and returns the
	// assembled context text along with the records it was built from.
	// An empty match list is a valid outcome; the context then states
	// that no direct match was found.
	BuildContext(ctx context.Context, query string) (string, []*KnowledgeRecord, error)
}

// Summarizer produces a short synopsis of page text.
type Summarizer interface {
	// Summarize returns a synopsis of text, using titleHint for context.
	// Callers fall back to a fixed-length truncation when it fails.
	Summarize(ctx context.Context, text, titleHint string) (string, error)
}

// Answerer turns an assembled context block into a prose answer.
type Answerer interface {
	Answer(ctx context.Context, contextText, query string) (string, error)
}
