// Package textproc provides text normalization and phrase segmentation for
// the scoring pipeline.
package textproc

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Clean lowercases a string, replaces newlines with spaces, collapses runs of
// whitespace, and trims the ends. Pure function, applied before skill
// extraction and to individual phrases after segmentation.
func Clean(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(strings.ToLower(s))
}
