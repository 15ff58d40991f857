package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/zarkhq/zark"
)

// Context assembly sizing.
const (
	// maxContextSentences is the cap on query-bearing sentences quoted
	// per record.
	maxContextSentences = 3

	// maxContextExcerpt is the content excerpt length used when no
	// sentence contains a query word.
	maxContextExcerpt = 800

	// maxContextTags is the cap on tags listed per record.
	maxContextTags = 5
)

// BuildContext searches for the query and assembles the context block
// handed to the generation step. The block is the sole grounding artifact:
// it bounds what information the generated answer may draw on.
func (e *Engine) BuildContext(ctx context.Context, query string) (string, []*zark.KnowledgeRecord, error) {
	recs, err := e.Search(ctx, query, e.limit())
	if err != nil {
		return "", nil, err
	}

	total, err := e.Records.CountRecords(ctx)
	if err != nil {
		return "", nil, err
	}

	return AssembleContext(query, total, recs), recs, nil
}

// AssembleContext renders the context block for a query from the matched
// records and the total record count. With no matches the block defers to
// general knowledge instead of grounding.
func AssembleContext(query string, total int, recs []*zark.KnowledgeRecord) string {
	if len(recs) == 0 {
		if total > 0 {
			return fmt.Sprintf("Query: %s\n\nI have access to %d knowledge entries, but none directly match your query. Provide a response based on general knowledge.", query, total)
		}
		return fmt.Sprintf("Query: %s\n\nNo knowledge entries found in the database. Provide a concise response based on general knowledge.", query)
	}

	words := queryWords(query, 2)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Query: %s\n\nI have access to %d total knowledge entries. Here are the most relevant ones:\n", query, total)

	for i, rec := range recs {
		fmt.Fprintf(&sb, "\n%d. Title: %s\n", i+1, rec.Title)
		fmt.Fprintf(&sb, "   Source: %s\n", rec.URL)
		if rec.Summary != "" {
			fmt.Fprintf(&sb, "   Summary: %s\n", rec.Summary)
		}
		fmt.Fprintf(&sb, "   Content: %s\n", excerpt(rec.Content, words))
		if len(rec.Tags) > 0 {
			tags := rec.Tags
			if len(tags) > maxContextTags {
				tags = tags[:maxContextTags]
			}
			fmt.Fprintf(&sb, "   Tags: %s\n", strings.Join(tags, ", "))
		}
	}

	sb.WriteString("\nProvide a helpful response based on the above knowledge. Be informative and accurate.")
	return sb.String()
}

// excerpt picks up to maxContextSentences sentences that contain a query
// word, falling back to the leading content when none qualify.
func excerpt(content string, words []string) string {
	var picked []string
	for _, sentence := range strings.Split(content, ". ") {
		lower := strings.ToLower(sentence)
		for _, w := range words {
			if strings.Contains(lower, w) {
				picked = append(picked, strings.TrimSpace(sentence))
				break
			}
		}
		if len(picked) == maxContextSentences {
			break
		}
	}

	if len(picked) > 0 {
		out := strings.Join(picked, ". ")
		if !strings.HasSuffix(out, ".") {
			out += "."
		}
		return out
	}

	if len(content) > maxContextExcerpt {
		return content[:maxContextExcerpt] + "..."
	}
	return content
}
