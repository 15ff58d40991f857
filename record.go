package zark

import (
	"context"
	"time"
)

// Size limits applied to a record at write/extraction time.
const (
	// MaxContentLength is the cap on stored page content. Text beyond the
	// cap is discarded at ingestion and never referenced again.
	MaxContentLength = 5000

	// MaxEntities, MaxTags and MaxKeywords cap the set-valued metadata
	// fields. The caps are enforced by the metadata extractor, never
	// downstream.
	MaxEntities = 20
	MaxTags     = 15
	MaxKeywords = 25
)

// KnowledgeRecord represents the knowledge distilled from one web page.
// Records are keyed by URL: at most one record exists per canonical URL.
type KnowledgeRecord struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Summary     string    `json:"summary"`
	Entities    []string  `json:"entities"`
	Tags        []string  `json:"tags"`
	Keywords    []string  `json:"keywords"`
	Domain      string    `json:"domain"`
	ContentHash string    `json:"contentHash"`
	IngestedAt  time.Time `json:"ingestedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *KnowledgeRecord) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	if len(r.Content) > MaxContentLength {
		return Errorf(EINVALID, "record content exceeds %d characters", MaxContentLength)
	}
	return nil
}

// Match kinds for RecordFilter predicates.
const (
	// MatchSubstring matches when the value is a case-insensitive
	// substring of a text field.
	MatchSubstring = "substring"

	// MatchMember matches when the value is an exact (case-sensitive)
	// element of an array field.
	MatchMember = "member"
)

// Text and array field names accepted by RecordFilter predicates.
const (
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldSummary  = "summary"
	FieldEntities = "entities"
	FieldTags     = "tags"
	FieldKeywords = "keywords"
)

// Match is a single field predicate within a RecordFilter.
type Match struct {
	Kind  string // MatchSubstring or MatchMember
	Field string // one of the Field* constants
	Value string
}

// SortOrder represents the sort order for record queries.
type SortOrder string

// SortByIngestedAt orders records most recently ingested first.
const SortByIngestedAt SortOrder = "ingested_at"

// RecordFilter represents a filter for FindRecords. Predicates in Any are
// OR'd together; an empty Any matches every record.
type RecordFilter struct {
	Any []Match

	SortBy SortOrder
	Limit  int
}

// RecordService represents a service for managing knowledge records.
type RecordService interface {
	// UpsertRecord inserts the record, or replaces the record with the
	// same URL if one exists. Replacement preserves the existing record's
	// ID and overwrites every other field. The write is atomic.
	UpsertRecord(ctx context.Context, rec *KnowledgeRecord) error

	// FindRecordByURL retrieves the record for a URL.
	// Returns ENOTFOUND if no record exists.
	FindRecordByURL(ctx context.Context, url string) (*KnowledgeRecord, error)

	// FindRecords retrieves records matching the filter.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*KnowledgeRecord, error)

	// CountRecords returns the total number of stored records.
	CountRecords(ctx context.Context) (int, error)

	// DeleteAllRecords removes every record and returns the number removed.
	DeleteAllRecords(ctx context.Context) (int, error)
}
