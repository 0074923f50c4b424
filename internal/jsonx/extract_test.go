package jsonx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSameValueRegardlessOfWrapping(t *testing.T) {
	wrappings := map[string]string{
		"bare":   `[0.9, 0.2, 0.7]`,
		"fenced": "Here are the scores:\n```json\n[0.9, 0.2, 0.7]\n```\nLet me know if you need more.",
		"fence no tag": "```\n[0.9, 0.2, 0.7]\n```",
		"prose":  "Sure! The scores are [0.9, 0.2, 0.7] as requested.",
	}
	for name, text := range wrappings {
		t.Run(name, func(t *testing.T) {
			var scores []float64
			require.NoError(t, Unmarshal(text, &scores))
			assert.Equal(t, []float64{0.9, 0.2, 0.7}, scores)
		})
	}
}

func TestExtractObjectWrappedInProse(t *testing.T) {
	text := "Of course. Here is the review:\n\n{\"approved\": true, \"score\": 0.85}\n\nHope this helps."
	var out struct {
		Approved bool    `json:"approved"`
		Score    float64 `json:"score"`
	}
	require.NoError(t, Unmarshal(text, &out))
	assert.True(t, out.Approved)
	assert.Equal(t, 0.85, out.Score)
}

func TestExtractNoJSON(t *testing.T) {
	_, err := Extract("I could not produce a response this time.")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Raw, "could not produce")
}

func TestExtractMalformedBracketsFail(t *testing.T) {
	_, err := Extract("{not json at all")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
}

func TestExtractEmpty(t *testing.T) {
	_, err := Extract("   \n  ")
	require.Error(t, err)
}

func TestExtractPrefersWholeTextOverFence(t *testing.T) {
	// Whole-text parse wins when the entire trimmed response is valid JSON.
	text := `{"body": "use ` + "```" + ` fences sparingly"}`
	raw, err := Extract(text)
	require.NoError(t, err)
	assert.JSONEq(t, text, string(raw))
}
