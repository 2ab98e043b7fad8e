package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSearchQuery(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Query
	}{
		{
			name:     "Terms only",
			input:    "/find refund late",
			expected: Query{RawInput: "/find refund late", Terms: "refund late", Limit: 10},
		},
		{
			name:  "Label and limit",
			input: "/find refund --label Negative --limit 5",
			expected: Query{
				RawInput: "/find refund --label Negative --limit 5",
				Terms:    "refund", Label: "negative", Limit: 5,
			},
		},
		{
			name:     "No terms",
			input:    "/find --label positive",
			expected: Query{RawInput: "/find --label positive", Label: "positive", Limit: 10},
		},
		{
			name:     "Invalid limit keeps default",
			input:    "/find order --limit zero",
			expected: Query{RawInput: "/find order --limit zero", Terms: "order", Limit: 10},
		},
		{
			name:     "Unknown flag is skipped with its value",
			input:    "/find order --room 12",
			expected: Query{RawInput: "/find order --room 12", Terms: "order", Limit: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, NewSearchQuery(tt.input))
		})
	}
}

func TestIsFind(t *testing.T) {
	req := require.New(t)
	req.True(IsFind("/find refund"))
	req.True(IsFind("  /FIND refund"))
	req.False(IsFind("find refund"))
	req.False(IsFind(""))
}
