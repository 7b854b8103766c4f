package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSkillType(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected SkillType
		ok       bool
	}{
		{name: "Hard Skill", raw: "Hard Skill", expected: SkillTypeHard, ok: true},
		{name: "Soft Skill", raw: "Soft Skill", expected: SkillTypeSoft, ok: true},
		{name: "Certification", raw: "Certification", expected: SkillTypeCertification, ok: true},
		{name: "Whitespace Trimmed", raw: "  Hard Skill ", expected: SkillTypeHard, ok: true},
		{name: "Unknown Label", raw: "Tool", ok: false},
		{name: "Empty", raw: "", ok: false},
		{name: "Lowercase Not Accepted", raw: "hard skill", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSkillType(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestSkillRecordValid(t *testing.T) {
	assert.True(t, SkillRecord{Name: "python", Type: SkillTypeHard}.Valid())
	assert.False(t, SkillRecord{Name: "", Type: SkillTypeHard}.Valid())
	assert.False(t, SkillRecord{Name: "   ", Type: SkillTypeHard}.Valid())
	assert.False(t, SkillRecord{Name: "python", Type: SkillType("Tool")}.Valid())
}

func TestDegenerateScoreRecord(t *testing.T) {
	rec := DegenerateScoreRecord("Empty input")

	assert.Equal(t, "Empty input", rec.Reason)
	assert.Zero(t, rec.Similarity)
	assert.Zero(t, rec.AverageSimilarity)
	assert.Zero(t, rec.MaxSimilarity)
	// Slices are initialized so JSON renders [] rather than null.
	assert.NotNil(t, rec.ResumeHardSkills)
	assert.NotNil(t, rec.MatchedCertifications)
	assert.Empty(t, rec.JobSoftSkills)
}

func TestScoreRequestValidate(t *testing.T) {
	valid := ScoreRequest{Filename: "resume.pdf", JobDescription: "backend engineer"}
	assert.NoError(t, valid.Validate())

	byURL := ScoreRequest{Filename: "resume.pdf", JobURL: "https://example.com/job/123"}
	assert.NoError(t, byURL.Validate())

	missingJob := ScoreRequest{Filename: "resume.pdf"}
	assert.Error(t, missingJob.Validate())

	missingFile := ScoreRequest{JobDescription: "backend engineer"}
	assert.Error(t, missingFile.Validate())
}
