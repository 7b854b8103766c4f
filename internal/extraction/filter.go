package extraction

import (
	"regexp"
	"strings"

	"github.com/coltonk1/trackify-jobs/internal/types"
)

// falsePositives are tokens extractors routinely misread as skills: degree
// abbreviations and fragments of them.
var falsePositives = map[string]bool{
	"b":    true,
	"bs":   true,
	"ms":   true,
	"cs":   true,
	"c.s.": true,
}

// singleCharWhitelist lists one-letter names that are real skills.
var singleCharWhitelist = map[string]bool{
	"r": true,
	"c": true,
}

var degreePattern = regexp.MustCompile(`(?i)b\.s\.|m\.s\.|ph\.d|degree|bachelor|master`)

// ContextClean removes false-positive skill records using the source text
// as context. A candidate on the false-positive list is always dropped.
// Single-letter candidates outside the whitelist are always dropped. When
// the text mentions a degree, any candidate whose name appears as a whole
// word in the text is dropped too: such matches are usually part of the
// degree phrase, not a genuine skill mention. Order is preserved and the
// pass is idempotent.
func ContextClean(text string, records []types.SkillRecord) []types.SkillRecord {
	textLower := strings.ToLower(text)
	degreeContext := degreePattern.MatchString(textLower)

	out := make([]types.SkillRecord, 0, len(records))
	for _, rec := range records {
		name := strings.ToLower(strings.TrimSpace(rec.Name))
		if falsePositives[name] {
			continue
		}
		if len(name) == 1 && !singleCharWhitelist[name] {
			continue
		}
		if degreeContext && wholeWordMatch(textLower, name) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// wholeWordMatch reports whether name occurs in text as a whole word.
func wholeWordMatch(text, name string) bool {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
	return re.MatchString(text)
}

// StripDegreeMentions removes degree-indicator words from a phrase,
// whole-word, so "b.s. computer science" matches the dictionary entry for
// "computer science". Used by strategies that match free-text spans rather
// than exact tokens.
func StripDegreeMentions(phrase string) string {
	fields := strings.Fields(phrase)
	kept := fields[:0]
	for _, f := range fields {
		lower := strings.ToLower(f)
		// Drop the token only when the whole token is a degree indicator;
		// "masterful" keeps its place.
		if degreePattern.FindString(lower) == lower {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}
