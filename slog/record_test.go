package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarkhq/zark"
	"github.com/zarkhq/zark/mock"
	zarkslog "github.com/zarkhq/zark/slog"
)

func TestLoggingRecordService_UpsertRecord(t *testing.T) {
	t.Parallel()

	t.Run("logs url and id on success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordService{
			UpsertRecordFn: func(_ context.Context, rec *zark.KnowledgeRecord) error {
				rec.ID = "rec-1"
				return nil
			},
		}

		svc := zarkslog.NewLoggingRecordService(inner, logger)
		err := svc.UpsertRecord(context.Background(), &zark.KnowledgeRecord{URL: "https://example.com/a"})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "upsert record")
		assert.Contains(t, output, "url=https://example.com/a")
		assert.Contains(t, output, "id=rec-1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordService{
			UpsertRecordFn: func(context.Context, *zark.KnowledgeRecord) error {
				return zark.Errorf(zark.EINTERNAL, "disk full")
			},
		}

		svc := zarkslog.NewLoggingRecordService(inner, logger)
		err := svc.UpsertRecord(context.Background(), &zark.KnowledgeRecord{URL: "https://example.com/a"})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "disk full")
	})
}

func TestLoggingRecordService_DeleteAllRecords(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.RecordService{
		DeleteAllRecordsFn: func(context.Context) (int, error) {
			return 3, nil
		},
	}

	svc := zarkslog.NewLoggingRecordService(inner, logger)
	n, err := svc.DeleteAllRecords(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	output := buf.String()
	assert.Contains(t, output, "delete all records")
	assert.Contains(t, output, "deleted=3")
}

func TestLoggingRecordService_Delegation(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	rec := &zark.KnowledgeRecord{URL: "https://example.com/a"}
	inner := &mock.RecordService{
		FindRecordByURLFn: func(_ context.Context, url string) (*zark.KnowledgeRecord, error) {
			return rec, nil
		},
		FindRecordsFn: func(context.Context, zark.RecordFilter) ([]*zark.KnowledgeRecord, error) {
			return []*zark.KnowledgeRecord{rec}, nil
		},
		CountRecordsFn: func(context.Context) (int, error) {
			return 1, nil
		},
	}

	svc := zarkslog.NewLoggingRecordService(inner, logger)

	got, err := svc.FindRecordByURL(context.Background(), "https://example.com/a")
	require.NoError(t, err)
	assert.Same(t, rec, got)

	recs, err := svc.FindRecords(context.Background(), zark.RecordFilter{})
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	n, err := svc.CountRecords(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
