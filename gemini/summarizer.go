// Package gemini implements summary and answer generation using the
// Google Gemini API.
package gemini

import (
	"context"
	"fmt"

	"github.com/zarkhq/zark"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Summarizer implements zark.Summarizer at compile time.
var _ zark.Summarizer = (*Summarizer)(nil)

// Summarizer implements zark.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize produces a short summary of the text, using the title hint
// for topical framing.
func (s *Summarizer) Summarize(ctx context.Context, text, titleHint string) (string, error) {
	if text == "" {
		return "", zark.Errorf(zark.EINVALID, "text required")
	}

	prompt := BuildSummaryPrompt(text, titleHint)
	config := BuildSummaryConfig()

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", zark.Errorf(zark.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildSummaryConfig returns the GenerateContentConfig for summary calls.
func BuildSummaryConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful AI assistant that creates concise, informative summaries.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildSummaryPrompt builds the user prompt for a summary request.
func BuildSummaryPrompt(text, titleHint string) string {
	if titleHint == "" {
		return fmt.Sprintf("Create a comprehensive summary of this content:\n\n%s", text)
	}
	return fmt.Sprintf("Create a comprehensive summary of this content about '%s':\n\n%s", titleHint, text)
}
