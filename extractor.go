package zark

// MinContentLength is the minimum extracted text length for a page to be
// considered meaningful. Pages at or below the threshold produce no record;
// this is a policy skip, not an error.
const MinContentLength = 100

// ExtractResult holds the text extracted from an HTML page.
type ExtractResult struct {
	// Title is the text of the page's title element, or the caller-supplied
	// fallback if the page has none.
	Title string

	// Text is the page's visible text with script/style content removed
	// and all whitespace runs collapsed to single spaces.
	Text string
}

// Meaningful reports whether the extracted text is long enough to store.
func (r *ExtractResult) Meaningful() bool {
	return len(r.Text) > MinContentLength
}

// TextExtractor extracts a title and plain text from raw HTML.
type TextExtractor interface {
	// Extract parses the markup and returns the normalized title and body
	// text. fallbackTitle is used when the page has no title element;
	// callers typically pass the URL path.
	Extract(html []byte, fallbackTitle string) (*ExtractResult, error)
}

// LinkExtractor extracts outbound link targets from raw HTML.
type LinkExtractor interface {
	// ExtractLinks returns up to limit link targets resolved against
	// baseURL to absolute URLs. The limit is applied to the page's anchors
	// in document order, before any caller-side filtering.
	ExtractLinks(html []byte, baseURL string, limit int) ([]string, error)
}

// Metadata holds the lexical metadata derived from a page.
// All fields are deduplicated and size-capped at extraction.
type Metadata struct {
	Entities []string
	Tags     []string
	Keywords []string
}

// MetadataExtractor derives entities, tags and keywords from extracted text.
// Implementations must be pure: the same (title, content) pair always yields
// identical metadata.
type MetadataExtractor interface {
	ExtractMetadata(title, content string) *Metadata
}
