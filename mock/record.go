package mock

import (
	"context"

	"github.com/zarkhq/zark"
)

var _ zark.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of zark.RecordService.
type RecordService struct {
	UpsertRecordFn     func(ctx context.Context, rec *zark.KnowledgeRecord) error
	FindRecordByURLFn  func(ctx context.Context, url string) (*zark.KnowledgeRecord, error)
	FindRecordsFn      func(ctx context.Context, filter zark.RecordFilter) ([]*zark.KnowledgeRecord, error)
	CountRecordsFn     func(ctx context.Context) (int, error)
	DeleteAllRecordsFn func(ctx context.Context) (int, error)
}

func (s *RecordService) UpsertRecord(ctx context.Context, rec *zark.KnowledgeRecord) error {
	return s.UpsertRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByURL(ctx context.Context, url string) (*zark.KnowledgeRecord, error) {
	return s.FindRecordByURLFn(ctx, url)
}

func (s *RecordService) FindRecords(ctx context.Context, filter zark.RecordFilter) ([]*zark.KnowledgeRecord, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) CountRecords(ctx context.Context) (int, error) {
	return s.CountRecordsFn(ctx)
}

func (s *RecordService) DeleteAllRecords(ctx context.Context) (int, error) {
	return s.DeleteAllRecordsFn(ctx)
}
