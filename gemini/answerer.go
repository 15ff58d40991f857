package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/zarkhq/zark"
	"google.golang.org/genai"
)

// detailPhrases mark a query as asking for an expanded answer.
var detailPhrases = []string{
	"more details", "more information", "explain further", "tell me more",
	"elaborate", "expand", "comprehensive", "detailed", "in depth",
}

// Ensure Answerer implements zark.Answerer at compile time.
var _ zark.Answerer = (*Answerer)(nil)

// Answerer implements zark.Answerer using Google Gemini.
type Answerer struct {
	client *genai.Client
}

// NewAnswerer creates a new Answerer.
func NewAnswerer(client *genai.Client) *Answerer {
	return &Answerer{client: client}
}

// Answer generates a response to the query grounded in the context block.
func (a *Answerer) Answer(ctx context.Context, contextText, query string) (string, error) {
	if query == "" {
		return "", zark.Errorf(zark.EINVALID, "query required")
	}

	prompt := BuildAnswerPrompt(contextText, query)
	config := BuildAnswerConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
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

// BuildAnswerConfig returns the GenerateContentConfig for answer calls.
func BuildAnswerConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are Zark, a helpful AI assistant.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildAnswerPrompt builds the user prompt for a query. Queries that ask
// for depth get a comprehensive framing; everything else is answered
// briefly.
func BuildAnswerPrompt(contextText, query string) string {
	if DetailedRequest(query) {
		return fmt.Sprintf("You are Zark, an AI assistant. Answer comprehensively using the provided context.\n\n%s\n\nProvide a detailed, accurate response. If you use information from sources, acknowledge them naturally.", contextText)
	}
	return fmt.Sprintf("You are Zark, an AI assistant. Answer concisely using the provided context.\n\n%s\n\nProvide a brief response in 5 lines or less. Be accurate and helpful.", contextText)
}

// DetailedRequest reports whether the query asks for an expanded answer.
func DetailedRequest(query string) bool {
	lower := strings.ToLower(query)
	for _, phrase := range detailPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
