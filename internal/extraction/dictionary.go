package extraction

import (
	"context"
	"strings"

	"github.com/coltonk1/trackify-jobs/internal/skilldb"
	"github.com/coltonk1/trackify-jobs/internal/types"
)

// DictionaryStrategy matches text n-grams against the skill dictionary. It
// is the cheapest strategy and the only one that needs no model backend.
type DictionaryStrategy struct {
	db *skilldb.DB
}

// NewDictionaryStrategy creates a dictionary matcher over the loaded
// skill dictionary.
func NewDictionaryStrategy(db *skilldb.DB) *DictionaryStrategy {
	return &DictionaryStrategy{db: db}
}

// Name implements Strategy.
func (s *DictionaryStrategy) Name() string { return "dictionary" }

// Extract scans the text with an n-gram window, longest-first at each
// position so multi-word names win over their substrings ("machine
// learning" before "learning"). Matches are returned in source order,
// deduplicated by name.
func (s *DictionaryStrategy) Extract(_ context.Context, text string) ([]types.SkillRecord, error) {
	tokens := tokenize(text)
	window := s.db.MaxWords()
	if window > maxSkillWords {
		window = maxSkillWords
	}

	seen := make(map[string]bool)
	var out []types.SkillRecord

	for i := 0; i < len(tokens); i++ {
		for n := window; n >= 1; n-- {
			if i+n > len(tokens) {
				continue
			}
			candidate := strings.Join(tokens[i:i+n], " ")
			entry, ok := s.db.Lookup(candidate)
			if !ok || seen[entry.Name] {
				continue
			}
			skillType, ok := types.ParseSkillType(entry.Type)
			if !ok {
				continue
			}
			seen[entry.Name] = true
			out = append(out, types.SkillRecord{
				SourceID: entry.ID,
				Name:     entry.Name,
				Type:     skillType,
			})
			i += n - 1 // consume matched tokens
			break
		}
	}
	return out, nil
}

// tokenize lowercases and splits text into word tokens, trimming
// punctuation from the edges but keeping interior characters so names like
// "node.js", "c++", and ".net framework" survive.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ",;:()[]{}\"'!?")
		// Trailing periods are sentence punctuation; leading ones are part
		// of names like ".net framework".
		f = strings.TrimRight(f, ".")
		if f == "" {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
