package srv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEnvelopeAwaiting(t *testing.T) {
	reply := "Here is my answer:\n" +
		`{"status": "awaiting_more_info", "next_question": "What platforms?", "missing_sections": ["Data Requirements"]}` +
		"\nLet me know."

	env, ok := extractEnvelope(reply)
	require.True(t, ok)
	assert.Equal(t, "awaiting_more_info", env.Status)
	assert.Equal(t, "What platforms?", env.NextQuestion)
	assert.Equal(t, []string{"Data Requirements"}, env.MissingSections)
}

func TestExtractEnvelopeReady(t *testing.T) {
	env, ok := extractEnvelope(`{"status": "ready", "message": "All set."}`)
	require.True(t, ok)
	assert.Equal(t, "ready", env.Status)
	assert.Equal(t, "All set.", env.Message)
}

func TestExtractEnvelopeMissing(t *testing.T) {
	_, ok := extractEnvelope("no json at all here")
	assert.False(t, ok)

	_, ok = extractEnvelope("{not valid json}")
	assert.False(t, ok)
}
