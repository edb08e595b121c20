package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBios(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected []string
	}{
		{
			name:     "clean JSON object",
			response: `{"bios": ["first bio", "second bio"]}`,
			expected: []string{"first bio", "second bio"},
		},
		{
			name:     "fenced JSON",
			response: "```json\n{\"bios\": [\"fenced bio\"]}\n```",
			expected: []string{"fenced bio"},
		},
		{
			name:     "fence without language tag",
			response: "```\n{\"bios\": [\"plain fence\"]}\n```",
			expected: []string{"plain fence"},
		},
		{
			name:     "prose around the object",
			response: "Here are your bios:\n{\"bios\": [\"wrapped bio\"]}\nHope you like them!",
			expected: []string{"wrapped bio"},
		},
		{
			name:     "bare JSON array",
			response: `["one", "two", "three"]`,
			expected: []string{"one", "two", "three"},
		},
		{
			name:     "multiline bios with emoji",
			response: `{"bios": ["✨ line one\nline two\nDM me ✨"]}`,
			expected: []string{"✨ line one\nline two\nDM me ✨"},
		},
		{
			name:     "blank entries dropped",
			response: `{"bios": ["keep", "", "   ", "also keep"]}`,
			expected: []string{"keep", "also keep"},
		},
		{
			name:     "empty bios array",
			response: `{"bios": []}`,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBios(tt.response)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractBiosErrors(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"empty response", ""},
		{"plain prose", "I can't help with that request."},
		{"unbalanced braces", "{\"bios\": [\"never closed\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractBios(tt.response)
			assert.Error(t, err)
		})
	}
}

func TestExtractBiosErrorTruncatesResponse(t *testing.T) {
	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'x'
	}
	_, err := ExtractBios(string(long))
	require.Error(t, err)
	assert.Less(t, len(err.Error()), 400, "error message should not echo the full response")
}
