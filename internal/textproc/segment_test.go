package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhrases(t *testing.T) {
	sg := NewSegmenter("")

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Splits On Newlines And Periods",
			input:    "Built REST APIs in Go. Led a team of five\nMentored juniors",
			expected: []string{"built rest apis in go", "led a team of five", "mentored juniors"},
		},
		{
			name:     "Bullet Markers",
			input:    "• Designed microservices; deployed to Kubernetes",
			expected: []string{"designed microservices", "deployed to kubernetes"},
		},
		{
			name:     "Short Spans Dropped",
			input:    "Go. C++. Implemented CI pipelines",
			expected: []string{"implemented ci pipelines"},
		},
		{
			name:     "Empty Input",
			input:    "",
			expected: []string{},
		},
		{
			name:     "Only Delimiters",
			input:    "...;;;\n\n",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sg.Phrases(tt.input))
		})
	}
}

func TestPhrasesPreservesSourceOrder(t *testing.T) {
	sg := NewSegmenter("")
	got := sg.Phrases("first phrase here. second phrase here. third phrase here")
	assert.Equal(t, []string{"first phrase here", "second phrase here", "third phrase here"}, got)
}

func TestPhrasesCustomDelimiters(t *testing.T) {
	sg := NewSegmenter("|")
	got := sg.Phrases("python developer|team leadership")
	assert.Equal(t, []string{"python developer", "team leadership"}, got)
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("with"))
	assert.False(t, IsStopword("python"))
	assert.False(t, IsStopword(""))
}
