package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/zarkhq/zark"
)

// Compile-time interface verification.
var _ zark.RecordService = (*RecordService)(nil)

// RecordService implements zark.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// recordColumns are the columns selected for record scans, in scan order.
const recordColumns = "id, url, domain, title, content, summary, entities, tags, keywords, content_hash, ingested_at"

// textColumn and arrayColumn map filter field names to columns, and double
// as the whitelist that keeps predicate fields out of SQL injection range.
var textColumn = map[string]string{
	zark.FieldTitle:   "title",
	zark.FieldContent: "content",
	zark.FieldSummary: "summary",
}

var arrayColumn = map[string]string{
	zark.FieldEntities: "entities",
	zark.FieldTags:     "tags",
	zark.FieldKeywords: "keywords",
}

// UpsertRecord inserts the record, or replaces the record with the same URL.
// Replacement preserves the existing record's ID and overwrites every other
// field; the row write is a single atomic statement. On return the record
// carries its authoritative ID, hash and ingestion timestamp.
func (s *RecordService) UpsertRecord(ctx context.Context, rec *zark.KnowledgeRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Domain == "" {
		if u, err := url.Parse(rec.URL); err == nil {
			rec.Domain = u.Host
		}
	}
	rec.ContentHash = hashContent(rec.Content)
	rec.IngestedAt = time.Now().UTC()

	entities, tags, keywords, err := marshalSets(rec)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (id, url, domain, title, content, summary, entities, tags, keywords, content_hash, ingested_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			domain = excluded.domain,
			title = excluded.title,
			content = excluded.content,
			summary = excluded.summary,
			entities = excluded.entities,
			tags = excluded.tags,
			keywords = excluded.keywords,
			content_hash = excluded.content_hash,
			ingested_at = excluded.ingested_at
	`, rec.ID, rec.URL, rec.Domain, rec.Title, rec.Content, rec.Summary,
		entities, tags, keywords, rec.ContentHash, rec.IngestedAt.Format(timeFormat))
	if err != nil {
		return err
	}

	// The conflict clause leaves the original ID in place; report it back.
	return s.db.QueryRowContext(ctx,
		"SELECT id FROM records WHERE url = ?", rec.URL).Scan(&rec.ID)
}

// FindRecordByURL retrieves the record for a URL.
func (s *RecordService) FindRecordByURL(ctx context.Context, rawURL string) (*zark.KnowledgeRecord, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+recordColumns+" FROM records WHERE url = ?", rawURL)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, zark.Errorf(zark.ENOTFOUND, "record not found for URL %q", rawURL)
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecords retrieves records matching the filter, most recently ingested
// first.
func (s *RecordService) FindRecords(ctx context.Context, filter zark.RecordFilter) ([]*zark.KnowledgeRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records")

	if len(filter.Any) > 0 {
		var preds []string
		for _, m := range filter.Any {
			switch m.Kind {
			case zark.MatchSubstring:
				col, ok := textColumn[m.Field]
				if !ok {
					return nil, zark.Errorf(zark.EINVALID, "unknown text field %q", m.Field)
				}
				preds = append(preds, "instr(lower("+col+"), lower(?)) > 0")
				args = append(args, m.Value)
			case zark.MatchMember:
				col, ok := arrayColumn[m.Field]
				if !ok {
					return nil, zark.Errorf(zark.EINVALID, "unknown array field %q", m.Field)
				}
				preds = append(preds, "EXISTS (SELECT 1 FROM json_each("+col+") WHERE json_each.value = ?)")
				args = append(args, m.Value)
			default:
				return nil, zark.Errorf(zark.EINVALID, "unknown match kind %q", m.Kind)
			}
		}
		query.WriteString(" WHERE " + strings.Join(preds, " OR "))
	}

	query.WriteString(" ORDER BY ingested_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*zark.KnowledgeRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// CountRecords returns the total number of stored records.
func (s *RecordService) CountRecords(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// DeleteAllRecords removes every record and returns the number removed.
func (s *RecordService) DeleteAllRecords(ctx context.Context) (int, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records")
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// scanner abstracts sql.Row and sql.Rows for scanRecord.
type scanner interface {
	Scan(dest ...any) error
}

// scanRecord scans one record row, decoding the JSON array columns and the
// ingestion timestamp.
func scanRecord(row scanner) (*zark.KnowledgeRecord, error) {
	var rec zark.KnowledgeRecord
	var entities, tags, keywords, ingestedAt string

	if err := row.Scan(&rec.ID, &rec.URL, &rec.Domain, &rec.Title, &rec.Content,
		&rec.Summary, &entities, &tags, &keywords, &rec.ContentHash, &ingestedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(entities), &rec.Entities); err != nil {
		return nil, fmt.Errorf("failed to decode entities: %w", err)
	}
	if err := json.Unmarshal([]byte(tags), &rec.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	if err := json.Unmarshal([]byte(keywords), &rec.Keywords); err != nil {
		return nil, fmt.Errorf("failed to decode keywords: %w", err)
	}

	var err error
	rec.IngestedAt, err = time.Parse(timeFormat, ingestedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ingested_at: %w", err)
	}

	return &rec, nil
}

// marshalSets encodes the record's array fields as JSON, mapping nil to [].
func marshalSets(rec *zark.KnowledgeRecord) (entities, tags, keywords string, err error) {
	enc := func(v []string) (string, error) {
		if v == nil {
			v = []string{}
		}
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	if entities, err = enc(rec.Entities); err != nil {
		return "", "", "", err
	}
	if tags, err = enc(rec.Tags); err != nil {
		return "", "", "", err
	}
	if keywords, err = enc(rec.Keywords); err != nil {
		return "", "", "", err
	}
	return entities, tags, keywords, nil
}
