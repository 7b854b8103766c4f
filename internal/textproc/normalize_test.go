package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Newlines Become Spaces",
			input:    "Python Developer\nTeam Lead",
			expected: "python developer team lead",
		},
		{
			name:     "Whitespace Collapsed",
			input:    "  too   many\t\tspaces  ",
			expected: "too many spaces",
		},
		{
			name:     "Lowercased",
			input:    "AWS Lambda",
			expected: "aws lambda",
		},
		{
			name:     "Empty",
			input:    "",
			expected: "",
		},
		{
			name:     "Only Whitespace",
			input:    " \n \t ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.input))
		})
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	once := Clean("Senior\nGo   Engineer")
	assert.Equal(t, once, Clean(once))
}
