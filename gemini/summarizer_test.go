package gemini_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarkhq/zark"
	"github.com/zarkhq/zark/gemini"
)

func TestSummarizer_Summarize_ReturnsErrorWhenTextEmpty(t *testing.T) {
	t.Parallel()

	s := gemini.NewSummarizer(nil) // nil client ok for this test

	_, err := s.Summarize(context.Background(), "", "Some Title")

	require.Error(t, err)
	assert.Equal(t, zark.EINVALID, zark.ErrorCode(err))
	assert.Contains(t, zark.ErrorMessage(err), "text required")
}

func TestBuildSummaryConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildSummaryConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "summaries")
}

func TestBuildSummaryConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildSummaryConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, *config.Temperature, 0.001)
}

func TestBuildSummaryPrompt_IncludesTitleHint(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildSummaryPrompt("Go is a compiled language.", "Go Basics")

	assert.Contains(t, prompt, "about 'Go Basics'")
	assert.Contains(t, prompt, "Go is a compiled language.")
}

func TestBuildSummaryPrompt_OmitsMissingTitleHint(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildSummaryPrompt("Some content here.", "")

	assert.NotContains(t, prompt, "about ''")
	assert.Contains(t, prompt, "Some content here.")
}
