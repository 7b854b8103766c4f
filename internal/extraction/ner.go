package extraction

import (
	"context"
	"strings"

	"github.com/coltonk1/trackify-jobs/internal/inference"
	"github.com/coltonk1/trackify-jobs/internal/skilldb"
	"github.com/coltonk1/trackify-jobs/internal/types"
)

// EntityLabeler is the token-classification backend the NER strategy uses.
// *inference.NERClient satisfies it.
type EntityLabeler interface {
	Label(ctx context.Context, text string) ([]inference.Entity, error)
}

// nerMinScore discards low-confidence spans before any other filtering.
const nerMinScore = 0.5

// NERStrategy extracts skills from spans the token-classification model
// labels as skills. Adjacent spans with the same label are merged back into
// one phrase using their character offsets, since the model splits
// multi-word names at subword boundaries. The model labels spans but does
// not type them; dictionary hits refine the default Hard Skill type.
type NERStrategy struct {
	labeler EntityLabeler
	db      *skilldb.DB
}

// NewNERStrategy creates the strategy. db may be nil, in which case every
// extracted span defaults to Hard Skill.
func NewNERStrategy(labeler EntityLabeler, db *skilldb.DB) *NERStrategy {
	return &NERStrategy{labeler: labeler, db: db}
}

// Name implements Strategy.
func (s *NERStrategy) Name() string { return "ner" }

// Extract implements Strategy.
func (s *NERStrategy) Extract(ctx context.Context, text string) ([]types.SkillRecord, error) {
	entities, err := s.labeler.Label(ctx, text)
	if err != nil {
		return nil, err
	}

	var out []types.SkillRecord
	for _, span := range mergeSpans(text, entities) {
		name := strings.ToLower(strings.TrimSpace(span))
		name = strings.TrimSpace(StripDegreeMentions(name))
		if !ValidSkillPhrase(name) {
			continue
		}

		rec := types.SkillRecord{Name: name, Type: types.SkillTypeHard}
		if s.db != nil {
			if entry, ok := s.db.Lookup(name); ok {
				if skillType, typeOK := types.ParseSkillType(entry.Type); typeOK {
					rec.SourceID = entry.ID
					rec.Name = entry.Name
					rec.Type = skillType
				}
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

// mergeSpans joins entities that are contiguous in the source text (same
// group, separated by at most one character) into a single phrase, reading
// the merged text from the original string so subword markers in the model
// output never leak through.
func mergeSpans(text string, entities []inference.Entity) []string {
	var spans []string
	runes := []rune(text)

	start, end := -1, -1
	group := ""
	flush := func() {
		if start >= 0 && start < len(runes) {
			e := end
			if e > len(runes) {
				e = len(runes)
			}
			spans = append(spans, string(runes[start:e]))
		}
		start, end, group = -1, -1, ""
	}

	for _, ent := range entities {
		if ent.Score < nerMinScore || ent.End <= ent.Start {
			continue
		}
		if start >= 0 && ent.Group == group && ent.Start <= end+1 {
			if ent.End > end {
				end = ent.End
			}
			continue
		}
		flush()
		start, end, group = ent.Start, ent.End, ent.Group
	}
	flush()
	return spans
}
