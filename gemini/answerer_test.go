package gemini_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarkhq/zark"
	"github.com/zarkhq/zark/gemini"
)

func TestAnswerer_Answer_ReturnsErrorWhenQueryEmpty(t *testing.T) {
	t.Parallel()

	a := gemini.NewAnswerer(nil) // nil client ok for this test

	_, err := a.Answer(context.Background(), "some context", "")

	require.Error(t, err)
	assert.Equal(t, zark.EINVALID, zark.ErrorCode(err))
	assert.Contains(t, zark.ErrorMessage(err), "query required")
}

func TestBuildAnswerConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildAnswerConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "Zark")
}

func TestBuildAnswerConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildAnswerConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.7, *config.Temperature, 0.001)
}

func TestBuildAnswerPrompt_ConciseByDefault(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildAnswerPrompt("context block", "what is go?")

	assert.Contains(t, prompt, "Answer concisely")
	assert.Contains(t, prompt, "5 lines or less")
	assert.Contains(t, prompt, "context block")
}

func TestBuildAnswerPrompt_ComprehensiveForDetailedRequests(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildAnswerPrompt("context block", "tell me more about go")

	assert.Contains(t, prompt, "Answer comprehensively")
	assert.Contains(t, prompt, "detailed, accurate response")
}

func TestDetailedRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		want  bool
	}{
		{"what is go?", false},
		{"tell me more about go", true},
		{"please ELABORATE on that", true},
		{"give me a comprehensive overview", true},
		{"explain go in depth", true},
		{"short answer please", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, gemini.DetailedRequest(tt.query))
		})
	}
}
