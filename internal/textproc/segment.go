package textproc

import "strings"

// DefaultDelimiters are the characters that end a candidate phrase: line
// breaks, sentence punctuation, and the bullet markers commonly found in
// resumes.
const DefaultDelimiters = "\n.;•-"

// minPhraseLen is the length a trimmed span must exceed to count as a
// phrase. Shorter spans are headings, initials, or noise.
const minPhraseLen = 4

// Segmenter splits raw text into candidate short phrases for semantic
// comparison.
type Segmenter struct {
	delimiters string
}

// NewSegmenter returns a Segmenter splitting on the given delimiter set, or
// on DefaultDelimiters when empty.
func NewSegmenter(delimiters string) *Segmenter {
	if delimiters == "" {
		delimiters = DefaultDelimiters
	}
	return &Segmenter{delimiters: delimiters}
}

// Phrases splits text on the delimiter set and returns the trimmed spans
// longer than four characters, in source order. Each phrase is normalized
// with Clean, so segmentation happens before normalization and line
// boundaries survive as segmentation hints. An empty result is valid and
// signals "no usable content" upstream.
func (sg *Segmenter) Phrases(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(sg.delimiters, r)
	})

	phrases := make([]string, 0, len(raw))
	for _, span := range raw {
		p := Clean(span)
		if len(p) > minPhraseLen {
			phrases = append(phrases, p)
		}
	}
	return phrases
}
