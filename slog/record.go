package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/zarkhq/zark"
)

// Ensure LoggingRecordService implements zark.RecordService at compile time.
var _ zark.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with write and query logging.
type LoggingRecordService struct {
	next   zark.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next zark.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// UpsertRecord delegates to the wrapped service and logs the write.
func (s *LoggingRecordService) UpsertRecord(ctx context.Context, rec *zark.KnowledgeRecord) error {
	begin := time.Now()
	err := s.next.UpsertRecord(ctx, rec)
	if err != nil {
		s.logger.Error("upsert record",
			"url", rec.URL,
			"duration", time.Since(begin),
			"err", err,
		)
		return err
	}
	s.logger.Info("upsert record",
		"url", rec.URL,
		"id", rec.ID,
		"duration", time.Since(begin),
	)
	return nil
}

// FindRecordByURL delegates to the wrapped service.
func (s *LoggingRecordService) FindRecordByURL(ctx context.Context, url string) (*zark.KnowledgeRecord, error) {
	return s.next.FindRecordByURL(ctx, url)
}

// FindRecords delegates to the wrapped service and logs the result size.
func (s *LoggingRecordService) FindRecords(ctx context.Context, filter zark.RecordFilter) ([]*zark.KnowledgeRecord, error) {
	begin := time.Now()
	recs, err := s.next.FindRecords(ctx, filter)
	if err != nil {
		s.logger.Error("find records",
			"predicates", len(filter.Any),
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}
	s.logger.Debug("find records",
		"predicates", len(filter.Any),
		"matches", len(recs),
		"duration", time.Since(begin),
	)
	return recs, nil
}

// CountRecords delegates to the wrapped service.
func (s *LoggingRecordService) CountRecords(ctx context.Context) (int, error) {
	return s.next.CountRecords(ctx)
}

// DeleteAllRecords delegates to the wrapped service and logs the count.
func (s *LoggingRecordService) DeleteAllRecords(ctx context.Context) (int, error) {
	begin := time.Now()
	n, err := s.next.DeleteAllRecords(ctx)
	if err != nil {
		s.logger.Error("delete all records",
			"duration", time.Since(begin),
			"err", err,
		)
		return 0, err
	}
	s.logger.Info("delete all records",
		"deleted", n,
		"duration", time.Since(begin),
	)
	return n, nil
}
