package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coltonk1/trackify-jobs/internal/types"
)

func TestPrintScoreRecord(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreRecord(&types.ScoreRecord{
		Similarity:        72.41,
		AverageSimilarity: 55.2,
		MaxSimilarity:     88.9,
	})

	out := buf.String()
	assert.Contains(t, out, "SCORE BREAKDOWN")
	assert.Contains(t, out, "72.41")
	assert.Contains(t, out, "55.20")
}

func TestPrintScoreRecordDegenerate(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreRecord(types.DegenerateScoreRecord("resume contains no usable text"))

	assert.Contains(t, buf.String(), "No score: resume contains no usable text")
}

func TestPrintScoreRecordNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreRecord(nil)
	assert.Empty(t, buf.String())
}

func TestPrintMatchedSkillsTruncates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	matches := make([]types.MatchedPair, 8)
	for i := range matches {
		matches[i] = types.MatchedPair{
			JobSkill:           types.SkillRecord{Name: "python"},
			ClosestResumeSkill: types.SkillRecord{Name: "python"},
			Similarity:         100,
		}
	}
	p.PrintMatchedSkills("HARD SKILLS", matches)

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintSkillsEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSkills("SKILLS", nil)
	assert.Empty(t, buf.String())
}
