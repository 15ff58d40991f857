package crawl

import (
	"strings"
	"sync"

	"github.com/zarkhq/zark/bloom"
)

// Entry is one unit of crawl work: a URL and the depth it was reached at.
type Entry struct {
	URL   string
	Depth int
}

// Frontier is an in-memory LIFO work-list of crawl entries with Bloom
// filter deduplication, giving the traversal depth-first order. It is
// scoped to a single ingestion call and safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	stack []Entry
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewFilter(n, fpRate),
	}
}

// Push adds an entry to the frontier.
// Returns false if the URL has already been seen this crawl.
// URL fragments are stripped before deduplication - URLs differing only by
// fragment are considered duplicates.
func (f *Frontier) Push(entry Entry) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url := stripFragment(entry.URL)
	if f.seen.Test(url) {
		return false
	}
	f.seen.Add(url)

	entry.URL = url
	f.stack = append(f.stack, entry)
	return true
}

// Pop returns the most recently pushed entry.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (Entry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.stack) == 0 {
		return Entry{}, false
	}
	entry := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	return entry, true
}

// Len returns the number of entries waiting in the work-list.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.stack)
}

// Seen returns true if the URL has been processed or queued this crawl.
// URL fragments are stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
