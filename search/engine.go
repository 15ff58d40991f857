// Package search provides the multi-tier retrieval engine. Stored records
// are matched against a free-text query using cascading lexical strategies;
// the first tier producing any result wins. No relevance score is computed:
// within a tier, ordering is purely temporal (most recently ingested first).
package search

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/zarkhq/zark"
)

// DefaultLimit is the result cap used when the caller passes no limit.
const DefaultLimit = 5

// intentRE matches "what is X" / "tell me about X" style queries and
// captures the topic X.
var intentRE = regexp.MustCompile(`(?i)^\s*(?:what\s+is|what's|who\s+is|tell\s+me\s+about)\s+(.+?)\s*\??\s*$`)

// Ensure Engine implements zark.ContextBuilder at compile time.
var _ zark.ContextBuilder = (*Engine)(nil)

// Engine retrieves the most relevant records for a query. It performs
// read-only store queries and holds no state, so it may run concurrently
// with itself and with crawls.
type Engine struct {
	Records zark.RecordService

	// Limit overrides DefaultLimit when > 0.
	Limit int
}

// tierFunc is one matching strategy. Tiers are tried in fixed precedence
// order and may legitimately return an empty list.
type tierFunc func(ctx context.Context, query string, limit int) ([]*zark.KnowledgeRecord, error)

// Search returns up to limit records for the query, most relevant first.
// An empty result is valid only for an empty store: the final recency tier
// guarantees results whenever any record exists.
func (e *Engine) Search(ctx context.Context, query string, limit int) ([]*zark.KnowledgeRecord, error) {
	if limit <= 0 {
		limit = e.limit()
	}

	tiers := []tierFunc{
		e.phraseTier,
		e.tokenTier,
		e.intentTier,
		e.substringTier,
		e.recencyTier,
	}

	for _, tier := range tiers {
		recs, err := tier(ctx, query, limit)
		if err != nil {
			return nil, err
		}
		if len(recs) > 0 {
			return recs, nil
		}
	}

	return nil, nil
}

func (e *Engine) limit() int {
	if e.Limit > 0 {
		return e.Limit
	}
	return DefaultLimit
}

// phraseTier matches the full query as a case-insensitive substring of
// title, content or summary.
func (e *Engine) phraseTier(ctx context.Context, query string, limit int) ([]*zark.KnowledgeRecord, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	return e.Records.FindRecords(ctx, zark.RecordFilter{
		Any: []zark.Match{
			{Kind: zark.MatchSubstring, Field: zark.FieldTitle, Value: query},
			{Kind: zark.MatchSubstring, Field: zark.FieldContent, Value: query},
			{Kind: zark.MatchSubstring, Field: zark.FieldSummary, Value: query},
		},
		SortBy: zark.SortByIngestedAt,
		Limit:  limit,
	})
}

// tokenTier matches each query word longer than 2 characters against
// title, summary, keywords, tags, entities and content. Entities are
// matched case-sensitively against the title-cased word; the other array
// fields hold lowercase elements.
func (e *Engine) tokenTier(ctx context.Context, query string, limit int) ([]*zark.KnowledgeRecord, error) {
	var any []zark.Match
	for _, word := range queryWords(query, 2) {
		any = append(any,
			zark.Match{Kind: zark.MatchSubstring, Field: zark.FieldTitle, Value: word},
			zark.Match{Kind: zark.MatchSubstring, Field: zark.FieldSummary, Value: word},
			zark.Match{Kind: zark.MatchMember, Field: zark.FieldKeywords, Value: word},
			zark.Match{Kind: zark.MatchMember, Field: zark.FieldTags, Value: word},
			zark.Match{Kind: zark.MatchMember, Field: zark.FieldEntities, Value: titleCase(word)},
			zark.Match{Kind: zark.MatchSubstring, Field: zark.FieldContent, Value: word},
		)
	}
	if len(any) == 0 {
		return nil, nil
	}

	return e.Records.FindRecords(ctx, zark.RecordFilter{
		Any:    any,
		SortBy: zark.SortByIngestedAt,
		Limit:  limit,
	})
}

// intentTier extracts the topic from "what is X" / "tell me about X"
// queries and matches it against title, tags and keywords.
func (e *Engine) intentTier(ctx context.Context, query string, limit int) ([]*zark.KnowledgeRecord, error) {
	m := intentRE.FindStringSubmatch(query)
	if m == nil {
		return nil, nil
	}
	topic := strings.ToLower(strings.TrimSpace(m[1]))
	if topic == "" {
		return nil, nil
	}

	return e.Records.FindRecords(ctx, zark.RecordFilter{
		Any: []zark.Match{
			{Kind: zark.MatchSubstring, Field: zark.FieldTitle, Value: topic},
			{Kind: zark.MatchMember, Field: zark.FieldTags, Value: topic},
			{Kind: zark.MatchMember, Field: zark.FieldKeywords, Value: topic},
		},
		SortBy: zark.SortByIngestedAt,
		Limit:  limit,
	})
}

// substringTier retries with unanchored substring matching on title and
// content only, for query words longer than 3 characters.
func (e *Engine) substringTier(ctx context.Context, query string, limit int) ([]*zark.KnowledgeRecord, error) {
	var any []zark.Match
	for _, word := range queryWords(query, 3) {
		any = append(any,
			zark.Match{Kind: zark.MatchSubstring, Field: zark.FieldTitle, Value: word},
			zark.Match{Kind: zark.MatchSubstring, Field: zark.FieldContent, Value: word},
		)
	}
	if len(any) == 0 {
		return nil, nil
	}

	return e.Records.FindRecords(ctx, zark.RecordFilter{
		Any:   any,
		Limit: limit,
	})
}

// recencyTier returns the most recently ingested records when every other
// tier came up empty and the store is non-empty.
func (e *Engine) recencyTier(ctx context.Context, _ string, limit int) ([]*zark.KnowledgeRecord, error) {
	total, err := e.Records.CountRecords(ctx)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, nil
	}

	return e.Records.FindRecords(ctx, zark.RecordFilter{
		SortBy: zark.SortByIngestedAt,
		Limit:  limit,
	})
}

// queryWords returns the lowercased whitespace-separated query words
// longer than minLen characters.
func queryWords(query string, minLen int) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		if len(w) > minLen {
			words = append(words, w)
		}
	}
	return words
}

// titleCase upper-cases the first rune and lower-cases the rest, mirroring
// how the metadata extractor shapes entity tokens.
func titleCase(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
