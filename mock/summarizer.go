package mock

import (
	"context"

	"github.com/zarkhq/zark"
)

var _ zark.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of zark.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, text, titleHint string) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, text, titleHint string) (string, error) {
	return s.SummarizeFn(ctx, text, titleHint)
}

var _ zark.Answerer = (*Answerer)(nil)

// Answerer is a mock implementation of zark.Answerer.
type Answerer struct {
	AnswerFn func(ctx context.Context, contextText, query string) (string, error)
}

func (a *Answerer) Answer(ctx context.Context, contextText, query string) (string, error) {
	return a.AnswerFn(ctx, contextText, query)
}
