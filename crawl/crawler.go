// Package crawl provides bounded recursive web crawling orchestration.
// It coordinates fetching, text extraction, metadata extraction,
// summarization and record storage over a depth-bounded, domain-scoped
// link graph.
package crawl

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/zarkhq/zark"
)

// Crawl bounds and sizing.
const (
	// DefaultMaxLinksPerPage caps the outbound links followed from one
	// page. Together with the depth bound and the frontier's dedup this
	// keeps the call graph finite under adversarial link graphs.
	DefaultMaxLinksPerPage = 10

	// summarySourceLength is how much page content is handed to the
	// summarizer.
	summarySourceLength = 1000

	// fallbackSummaryLength is the truncation length used when no
	// summarizer is available or summarization fails.
	fallbackSummaryLength = 300

	// frontierExpectedURLs is the expected URL count for Bloom filter
	// sizing; frontierFalsePositiveRate is the acceptable false positive
	// rate for deduplication.
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// Ensure Crawler implements zark.Ingestor at compile time.
var _ zark.Ingestor = (*Crawler)(nil)

// Crawler orchestrates ingestion crawls. Fetches are issued sequentially:
// one outstanding request at a time, which bounds resource usage and keeps
// the visited-set free of races.
type Crawler struct {
	Fetcher    zark.Fetcher
	Extractor  zark.TextExtractor
	Metadata   zark.MetadataExtractor
	Links      zark.LinkExtractor
	Records    zark.RecordService
	Summarizer zark.Summarizer // optional; truncation fallback when nil
	Limiter    *DomainLimiter  // optional
	Logger     *slog.Logger    // optional

	// MaxLinksPerPage overrides DefaultMaxLinksPerPage when > 0.
	MaxLinksPerPage int
}

// Ingest crawls depth-first from seedURL and upserts a record per
// meaningful page. The seed is visited at depth 1; a branch terminates when
// its depth exceeds maxDepth, its URL was already seen this call, its fetch
// or extraction fails, or its content is not meaningful. Links are followed
// only to http/https URLs on the same host as the linking page.
//
// Fetch and extraction failures are branch-local. Only record store
// failures abort the ingestion; the pages stored before the failure remain
// stored. Returns the number of pages stored; zero is a valid outcome.
func (c *Crawler) Ingest(ctx context.Context, seedURL string, maxDepth int) (int, error) {
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(Entry{URL: seedURL, Depth: 1})

	stored := 0
	for {
		entry, ok := frontier.Pop()
		if !ok {
			break
		}
		if entry.Depth > maxDepth {
			continue
		}
		if ctx.Err() != nil {
			break
		}

		pageURL, err := url.Parse(entry.URL)
		if err != nil {
			logger.Warn("skipping unparsable URL", "url", entry.URL, "err", err)
			continue
		}

		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx, pageURL.Host); err != nil {
				break // context canceled
			}
		}

		res, err := c.Fetcher.Fetch(ctx, entry.URL)
		if err != nil {
			logger.Warn("fetch failed", "url", entry.URL, "depth", entry.Depth, "err", err)
			continue
		}

		extracted, err := c.Extractor.Extract(res.Body, pageURL.Path)
		if err != nil {
			logger.Warn("extraction failed", "url", entry.URL, "err", err)
			continue
		}

		if !extracted.Meaningful() {
			logger.Debug("skipping page with insufficient content", "url", entry.URL)
			continue
		}

		content := extracted.Text
		if len(content) > zark.MaxContentLength {
			content = content[:zark.MaxContentLength]
		}

		meta := c.Metadata.ExtractMetadata(extracted.Title, content)

		rec := &zark.KnowledgeRecord{
			URL:      entry.URL,
			Title:    extracted.Title,
			Content:  content,
			Summary:  c.summarize(ctx, logger, content, extracted.Title),
			Entities: meta.Entities,
			Tags:     meta.Tags,
			Keywords: meta.Keywords,
			Domain:   pageURL.Host,
		}

		if err := c.Records.UpsertRecord(ctx, rec); err != nil {
			return stored, err
		}
		stored++
		logger.Info("page ingested", "url", entry.URL, "depth", entry.Depth, "title", rec.Title)

		if entry.Depth < maxDepth {
			c.expandLinks(logger, frontier, res.Body, pageURL, entry.Depth)
		}
	}

	return stored, nil
}

// expandLinks extracts capped outbound links from a page and queues the
// in-scope ones at depth+1. Pushed in reverse so the LIFO frontier visits
// them in document order.
func (c *Crawler) expandLinks(logger *slog.Logger, frontier *Frontier, html []byte, pageURL *url.URL, depth int) {
	limit := c.MaxLinksPerPage
	if limit <= 0 {
		limit = DefaultMaxLinksPerPage
	}

	links, err := c.Links.ExtractLinks(html, pageURL.String(), limit)
	if err != nil {
		logger.Warn("link extraction failed", "url", pageURL.String(), "err", err)
		return
	}

	for i := len(links) - 1; i >= 0; i-- {
		target, err := url.Parse(links[i])
		if err != nil {
			continue
		}
		if target.Scheme != "http" && target.Scheme != "https" {
			continue
		}
		// Same-domain restriction: prevents scope escape across hosts.
		if target.Host != pageURL.Host {
			continue
		}
		frontier.Push(Entry{URL: links[i], Depth: depth + 1})
	}
}

// summarize asks the summarizer for a synopsis of the leading content,
// falling back to deterministic truncation when it is absent or fails.
func (c *Crawler) summarize(ctx context.Context, logger *slog.Logger, content, title string) string {
	if c.Summarizer != nil {
		source := content
		if len(source) > summarySourceLength {
			source = source[:summarySourceLength]
		}
		summary, err := c.Summarizer.Summarize(ctx, source, title)
		if err == nil {
			return summary
		}
		logger.Warn("summarization failed, using truncation fallback", "title", title, "err", err)
	}

	if len(content) <= fallbackSummaryLength {
		return content
	}
	return content[:fallbackSummaryLength] + "..."
}
