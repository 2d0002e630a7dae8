package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnalysis(t *testing.T) {
	raw := `{
		"strengths": ["Built great initial rapport"],
		"improvements": ["Use more social proof"],
		"steps": {"greeting": true, "videoPitch": false}
	}`

	a, err := ParseAnalysis(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Built great initial rapport"}, a.Strengths)
	assert.Equal(t, []string{"Use more social proof"}, a.Improvements)
	assert.True(t, a.Steps["greeting"])
	assert.False(t, a.Steps["videoPitch"])
}

func TestParseAnalysisMissingFields(t *testing.T) {
	a, err := ParseAnalysis(`{}`)
	require.NoError(t, err)
	assert.Empty(t, a.Strengths)
	assert.Empty(t, a.Improvements)
	assert.Empty(t, a.Steps)
}

func TestParseAnalysisMalformed(t *testing.T) {
	_, err := ParseAnalysis(`not json at all`)
	assert.Error(t, err)

	_, err = ParseAnalysis(`{"steps": "greeting"}`)
	assert.Error(t, err, "steps must be an object of booleans")
}
