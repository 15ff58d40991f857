package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarkhq/zark"
	main "github.com/zarkhq/zark/cmd/zark"
	"github.com/zarkhq/zark/mock"
)

// testDeps returns Dependencies writing to fresh buffers.
func testDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
	}, stdout, stderr
}

func TestIngestCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("crawls and reports stored count", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		var gotDepth int
		deps, stdout, stderr := testDeps()
		deps.Crawler = &mock.Ingestor{
			IngestFn: func(_ context.Context, seedURL string, maxDepth int) (int, error) {
				gotURL = seedURL
				gotDepth = maxDepth
				return 4, nil
			},
		}

		cmd := &main.IngestCmd{URL: "https://example.com", Depth: 2}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", gotURL)
		assert.Equal(t, 2, gotDepth)
		assert.Contains(t, stdout.String(), "Stored 4 pages")
		assert.Empty(t, stderr.String())
	})

	t.Run("rejects depth below 1", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()

		cmd := &main.IngestCmd{URL: "https://example.com", Depth: 0}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, zark.EINVALID, zark.ErrorCode(err))
		assert.Contains(t, stderr.String(), "depth")
	})

	t.Run("returns error when crawl fails", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()
		deps.Crawler = &mock.Ingestor{
			IngestFn: func(context.Context, string, int) (int, error) {
				return 1, zark.Errorf(zark.EINTERNAL, "database error")
			},
		}

		cmd := &main.IngestCmd{URL: "https://example.com", Depth: 1}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
		assert.Contains(t, stderr.String(), "database error")
	})
}

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("answers with sources", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := testDeps()
		deps.Builder = &mock.ContextBuilder{
			BuildContextFn: func(_ context.Context, query string) (string, []*zark.KnowledgeRecord, error) {
				assert.Equal(t, "what is go?", query)
				return "context block", []*zark.KnowledgeRecord{
					{Title: "Go Basics", URL: "https://example.com/go"},
				}, nil
			},
		}
		deps.Answerer = &mock.Answerer{
			AnswerFn: func(_ context.Context, contextText, query string) (string, error) {
				assert.Equal(t, "context block", contextText)
				return "Go is a programming language.", nil
			},
		}

		cmd := &main.AskCmd{Query: "what is go?"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Go is a programming language.")
		assert.Contains(t, stdout.String(), "Sources:")
		assert.Contains(t, stdout.String(), "https://example.com/go")
		assert.Empty(t, stderr.String())
	})

	t.Run("omits sources when nothing matched", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		deps.Builder = &mock.ContextBuilder{
			BuildContextFn: func(_ context.Context, query string) (string, []*zark.KnowledgeRecord, error) {
				return "no match context", nil, nil
			},
		}
		deps.Answerer = &mock.Answerer{
			AnswerFn: func(context.Context, string, string) (string, error) {
				return "General knowledge answer.", nil
			},
		}

		cmd := &main.AskCmd{Query: "anything"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "General knowledge answer.")
		assert.NotContains(t, stdout.String(), "Sources:")
	})

	t.Run("returns error when answerer fails", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()
		deps.Builder = &mock.ContextBuilder{
			BuildContextFn: func(context.Context, string) (string, []*zark.KnowledgeRecord, error) {
				return "ctx", nil, nil
			},
		}
		deps.Answerer = &mock.Answerer{
			AnswerFn: func(context.Context, string, string) (string, error) {
				return "", zark.Errorf(zark.EUNAVAILABLE, "model unavailable")
			},
		}

		cmd := &main.AskCmd{Query: "anything"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "model unavailable")
	})
}

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists matching records", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := testDeps()
		deps.Builder = &mock.ContextBuilder{
			BuildContextFn: func(context.Context, string) (string, []*zark.KnowledgeRecord, error) {
				return "", []*zark.KnowledgeRecord{
					{Title: "Go Basics", URL: "https://example.com/go", Summary: "An intro.", Tags: []string{"technology"}},
					{Title: "Go Modules", URL: "https://example.com/mod"},
				}, nil
			},
		}

		cmd := &main.SearchCmd{Query: "go"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "1. Go Basics")
		assert.Contains(t, output, "An intro.")
		assert.Contains(t, output, "tags: technology")
		assert.Contains(t, output, "2. Go Modules")
		assert.Empty(t, stderr.String())
	})

	t.Run("shows hint when nothing matches", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		deps.Builder = &mock.ContextBuilder{
			BuildContextFn: func(context.Context, string) (string, []*zark.KnowledgeRecord, error) {
				return "", nil, nil
			},
		}

		cmd := &main.SearchCmd{Query: "go"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No matching knowledge entries")
	})
}

func TestKnowledgeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("shows total and recent entries", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := testDeps()
		deps.Records = &mock.RecordService{
			CountRecordsFn: func(context.Context) (int, error) {
				return 12, nil
			},
			FindRecordsFn: func(_ context.Context, filter zark.RecordFilter) ([]*zark.KnowledgeRecord, error) {
				assert.Equal(t, zark.SortByIngestedAt, filter.SortBy)
				assert.Equal(t, 10, filter.Limit)
				return []*zark.KnowledgeRecord{
					{Title: "Go Basics", URL: "https://example.com/go", IngestedAt: time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)},
				}, nil
			},
		}

		cmd := &main.KnowledgeCmd{Limit: 10}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "12 knowledge entries")
		assert.Contains(t, output, "2026-08-20 09:30")
		assert.Contains(t, output, "Go Basics")
		assert.Empty(t, stderr.String())
	})

	t.Run("shows hint for empty store", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		deps.Records = &mock.RecordService{
			CountRecordsFn: func(context.Context) (int, error) {
				return 0, nil
			},
		}

		cmd := &main.KnowledgeCmd{Limit: 10}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No knowledge entries")
	})
}

func TestClearCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes all records with --force", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := testDeps()
		deps.Records = &mock.RecordService{
			DeleteAllRecordsFn: func(context.Context) (int, error) {
				return 5, nil
			},
		}

		cmd := &main.ClearCmd{Force: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Deleted 5 knowledge entries")
		assert.Empty(t, stderr.String())
	})

	t.Run("requires force flag", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()

		cmd := &main.ClearCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, zark.EINVALID, zark.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})
}
