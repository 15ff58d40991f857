// Package lexical provides a regexp-based implementation of
// zark.MetadataExtractor. The heuristics are cheap, explainable and
// reproducible; there is no single correct extraction, so precision is
// deliberately traded for determinism.
package lexical

import (
	"regexp"
	"sort"
	"strings"

	"github.com/zarkhq/zark"
)

// Per-sieve caps applied before the combined field caps.
const (
	maxProperNouns   = 15
	maxDates         = 5
	maxNumbers       = 5
	maxFrequentTags  = 10
	maxFrequentWords = 20
)

var (
	properNounRE = regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+)*\b`)
	dateRE       = regexp.MustCompile(`\b\d{4}\b|\b\d{1,2}/\d{1,2}/\d{4}\b|\b\d{1,2} \w+ \d{4}\b`)
	numberRE     = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:%|percent\b|million\b|billion\b|thousand\b|km\b|miles\b|years?\b|days?\b)`)
	wordRE       = regexp.MustCompile(`\b\w+\b`)
	quotedRE     = regexp.MustCompile(`"([^"]+)"`)
	longWordRE   = regexp.MustCompile(`\b[a-zA-Z]{4,}\b`)
	shortWordRE  = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)
)

// Category maps a topical label to the keywords that signal it.
type Category struct {
	Label    string
	Keywords []string
}

// DefaultCategories is the standard category table.
var DefaultCategories = []Category{
	{Label: "technology", Keywords: []string{"technology", "software", "computer", "digital", "internet", "ai", "artificial intelligence", "machine learning"}},
	{Label: "science", Keywords: []string{"science", "research", "study", "experiment", "discovery", "theory"}},
	{Label: "history", Keywords: []string{"history", "historical", "ancient", "century", "war", "empire"}},
	{Label: "geography", Keywords: []string{"country", "city", "region", "continent", "ocean", "mountain"}},
	{Label: "business", Keywords: []string{"company", "business", "economy", "market", "industry", "financial"}},
	{Label: "health", Keywords: []string{"health", "medical", "disease", "treatment", "medicine", "hospital"}},
}

// Ensure Extractor implements zark.MetadataExtractor at compile time.
var _ zark.MetadataExtractor = (*Extractor)(nil)

// Extractor derives entities, tags and keywords from page text.
// It is a pure function of its inputs: every dedup preserves first
// occurrence and every frequency sort is stable.
type Extractor struct {
	categories []Category
}

// NewExtractor creates an Extractor using the given category table.
// Pass DefaultCategories for the standard labels.
func NewExtractor(categories []Category) *Extractor {
	return &Extractor{categories: categories}
}

// ExtractMetadata runs the three independent lexical sieves over the title
// and content and returns the capped, deduplicated result.
func (e *Extractor) ExtractMetadata(title, content string) *zark.Metadata {
	return &zark.Metadata{
		Entities: extractEntities(content),
		Tags:     e.extractTags(title, content),
		Keywords: extractKeywords(title, content),
	}
}

// extractEntities collects proper-noun-like runs, date-like tokens, and
// number+unit tokens.
func extractEntities(content string) []string {
	var entities []string

	entities = append(entities, dedupCap(properNounRE.FindAllString(content, -1), maxProperNouns)...)
	entities = append(entities, dedupCap(dateRE.FindAllString(content, -1), maxDates)...)
	entities = append(entities, dedupCap(numberRE.FindAllString(content, -1), maxNumbers)...)

	return dedupCap(entities, zark.MaxEntities)
}

// extractTags collects long title words, matched category labels, and the
// most frequent content words.
func (e *Extractor) extractTags(title, content string) []string {
	var tags []string

	for _, w := range wordRE.FindAllString(strings.ToLower(title), -1) {
		if len(w) > 3 {
			tags = append(tags, w)
		}
	}

	contentLower := strings.ToLower(content)
	for _, cat := range e.categories {
		for _, kw := range cat.Keywords {
			if strings.Contains(contentLower, kw) {
				tags = append(tags, cat.Label)
				break
			}
		}
	}

	for _, wc := range frequentWords(longWordRE.FindAllString(contentLower, -1), maxFrequentTags) {
		if wc.count > 2 {
			tags = append(tags, wc.word)
		}
	}

	return dedupCap(tags, zark.MaxTags)
}

// extractKeywords collects title words, words inside double-quoted spans,
// and content words occurring three or more times.
func extractKeywords(title, content string) []string {
	var keywords []string

	for _, w := range wordRE.FindAllString(strings.ToLower(title), -1) {
		if len(w) > 2 {
			keywords = append(keywords, w)
		}
	}

	for _, m := range quotedRE.FindAllStringSubmatch(content, -1) {
		keywords = append(keywords, strings.Fields(strings.ToLower(m[1]))...)
	}

	var frequent []string
	counts := make(map[string]int)
	var order []string
	for _, w := range shortWordRE.FindAllString(strings.ToLower(content), -1) {
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}
	for _, w := range order {
		if counts[w] >= 3 {
			frequent = append(frequent, w)
		}
	}
	if len(frequent) > maxFrequentWords {
		frequent = frequent[:maxFrequentWords]
	}
	keywords = append(keywords, frequent...)

	return dedupCap(keywords, zark.MaxKeywords)
}

// wordCount pairs a word with its occurrence count.
type wordCount struct {
	word  string
	count int
}

// frequentWords returns up to n words ordered by descending count.
// Ties keep first-occurrence order.
func frequentWords(words []string, n int) []wordCount {
	counts := make(map[string]int)
	var order []string
	for _, w := range words {
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	ranked := make([]wordCount, 0, len(order))
	for _, w := range order {
		ranked = append(ranked, wordCount{word: w, count: counts[w]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// dedupCap removes duplicates preserving first occurrence and caps the
// result at n.
func dedupCap(values []string, n int) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}
