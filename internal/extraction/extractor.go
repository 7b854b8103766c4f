// Package extraction produces SkillRecord candidates from text via
// pluggable strategies (dictionary matching, NER, embedding-cluster
// filtering, LLM-assisted normalization) and cleans the combined result.
package extraction

import (
	"context"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/coltonk1/trackify-jobs/internal/textproc"
	"github.com/coltonk1/trackify-jobs/internal/types"
)

// maxSkillWords is the longest candidate (in words) that can still be a
// skill name.
const maxSkillWords = 3

// Strategy extracts skill candidates from normalized text. Strategies are
// composed; results are unioned by name before filtering.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, text string) ([]types.SkillRecord, error)
}

// ValidSkillPhrase is the validity predicate for a candidate skill string.
// It rejects candidates longer than three words, stopwords, symbol-only
// strings, sub-word continuation fragments, and anything containing a
// digit (numbers in a "skill" token usually mean a misclassified phone
// number or date).
func ValidSkillPhrase(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "##") {
		return false
	}
	if len(strings.Fields(s)) > maxSkillWords {
		return false
	}
	if textproc.IsStopword(strings.ToLower(s)) {
		return false
	}

	hasWord := false
	for _, r := range s {
		if unicode.IsDigit(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasWord = true
		}
	}
	return hasWord
}

// Combine unions strategy outputs by lowercased name. When the same name
// appears with different types, a dictionary-sourced record (non-empty
// SourceID) wins over a heuristic extractor's default. Malformed records
// are dropped, not defaulted; extraction is noisy and partial loss is
// expected.
func Combine(log zerolog.Logger, batches ...[]types.SkillRecord) []types.SkillRecord {
	byName := make(map[string]int)
	out := make([]types.SkillRecord, 0)

	for _, batch := range batches {
		for _, rec := range batch {
			rec.Name = strings.ToLower(strings.TrimSpace(rec.Name))
			if !rec.Valid() {
				log.Debug().
					Err(&types.MalformedSkillRecordError{Name: rec.Name, RawType: string(rec.Type)}).
					Msg("dropping malformed skill record")
				continue
			}

			if idx, seen := byName[rec.Name]; seen {
				// Dictionary type metadata is authoritative.
				if out[idx].SourceID == "" && rec.SourceID != "" {
					out[idx] = rec
				}
				continue
			}
			byName[rec.Name] = len(out)
			out = append(out, rec)
		}
	}
	return out
}

// Pipeline runs a set of strategies over one text and combines their
// output. A strategy error aborts the whole extraction; the caller decides
// whether that is fatal for the request.
type Pipeline struct {
	strategies []Strategy
	log        zerolog.Logger
}

// NewPipeline composes strategies in the given order.
func NewPipeline(log zerolog.Logger, strategies ...Strategy) *Pipeline {
	return &Pipeline{strategies: strategies, log: log}
}

// Extract runs every strategy and returns the deduplicated union, filtered
// by ContextClean against the source text.
func (p *Pipeline) Extract(ctx context.Context, text string) ([]types.SkillRecord, error) {
	batches := make([][]types.SkillRecord, 0, len(p.strategies))
	for _, s := range p.strategies {
		recs, err := s.Extract(ctx, text)
		if err != nil {
			return nil, err
		}
		p.log.Debug().Str("strategy", s.Name()).Int("candidates", len(recs)).Msg("strategy finished")
		batches = append(batches, recs)
	}
	combined := Combine(p.log, batches...)
	return ContextClean(text, combined), nil
}
