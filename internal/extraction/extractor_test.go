package extraction

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/coltonk1/trackify-jobs/internal/types"
)

func TestValidSkillPhrase(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		want   bool
	}{
		{name: "simple skill", phrase: "python", want: true},
		{name: "multi word", phrase: "machine learning", want: true},
		{name: "three words", phrase: "natural language processing", want: true},
		{name: "four words", phrase: "very long skill phrase name", want: false},
		{name: "empty", phrase: "", want: false},
		{name: "whitespace only", phrase: "   ", want: false},
		{name: "stopword", phrase: "the", want: false},
		{name: "subword fragment", phrase: "##ing", want: false},
		{name: "contains digit", phrase: "python3", want: false},
		{name: "symbols only", phrase: "+++", want: false},
		{name: "symbol plus letter", phrase: "c++", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidSkillPhrase(tt.phrase))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "punctuation trimmed",
			in:   "Python, Flask. (Docker)",
			want: []string{"python", "flask", "docker"},
		},
		{
			name: "interior dots survive",
			in:   "node.js and .net framework",
			want: []string{"node.js", "and", ".net", "framework"},
		},
		{
			name: "trailing sentence period",
			in:   "experience with flask.",
			want: []string{"experience", "with", "flask"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenize(tt.in))
		})
	}
}

func TestCombineDeduplicatesByName(t *testing.T) {
	log := zerolog.Nop()

	a := []types.SkillRecord{
		{Name: "Python", Type: types.SkillTypeHard},
		{Name: "teamwork", Type: types.SkillTypeSoft},
	}
	b := []types.SkillRecord{
		{SourceID: "KS0001", Name: "python", Type: types.SkillTypeHard},
		{Name: "docker", Type: types.SkillTypeHard},
	}

	got := Combine(log, a, b)
	assert.Len(t, got, 3)
	// The dictionary-sourced duplicate replaces the heuristic record in place.
	assert.Equal(t, "python", got[0].Name)
	assert.Equal(t, "KS0001", got[0].SourceID)
	assert.Equal(t, "teamwork", got[1].Name)
	assert.Equal(t, "docker", got[2].Name)
}

func TestCombineDropsMalformedRecords(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	got := Combine(log, []types.SkillRecord{
		{Name: "", Type: types.SkillTypeHard},
		{Name: "python", Type: "Unknown Type"},
		{Name: "python", Type: types.SkillTypeHard},
	})
	assert.Len(t, got, 1)
	assert.Equal(t, "python", got[0].Name)
	// Each drop is logged with the typed record error.
	assert.Contains(t, buf.String(), "malformed skill record")
	assert.Contains(t, buf.String(), "Unknown Type")
}

func TestContextClean(t *testing.T) {
	records := []types.SkillRecord{
		{Name: "python", Type: types.SkillTypeHard},
		{Name: "bs", Type: types.SkillTypeHard},
		{Name: "r", Type: types.SkillTypeHard},
		{Name: "c", Type: types.SkillTypeHard},
		{Name: "x", Type: types.SkillTypeHard},
	}

	t.Run("stoplist removal is unconditional", func(t *testing.T) {
		text := "skilled in python, bs tooling, and r"
		got := ContextClean(text, records)

		names := make([]string, len(got))
		for i, r := range got {
			names[i] = r.Name
		}
		// "bs" drops even without a degree mention; "x" drops because
		// single-letter names outside the whitelist are never skills.
		assert.Equal(t, []string{"python", "r", "c"}, names)
	})

	t.Run("degree context drops names mentioned in the text", func(t *testing.T) {
		text := "b.s. in computer science, skilled in python and r"
		got := ContextClean(text, records)

		names := make([]string, len(got))
		for i, r := range got {
			names[i] = r.Name
		}
		// "python" and "r" appear as whole words in a degree-bearing text;
		// "c" does not appear standalone and survives.
		assert.Equal(t, []string{"c"}, names)
	})

	t.Run("degree context spares names absent from the text", func(t *testing.T) {
		text := "b.s. in computer science, python coursework"
		got := ContextClean(text, []types.SkillRecord{
			{Name: "python", Type: types.SkillTypeHard},
			{Name: "flask", Type: types.SkillTypeHard},
		})

		names := make([]string, len(got))
		for i, r := range got {
			names[i] = r.Name
		}
		assert.Equal(t, []string{"flask"}, names)
	})

	t.Run("idempotent", func(t *testing.T) {
		text := "bachelor of science, python"
		once := ContextClean(text, records)
		twice := ContextClean(text, once)
		assert.Equal(t, once, twice)
	})
}

type stubStrategy struct {
	name string
	recs []types.SkillRecord
	err  error
}

func (s *stubStrategy) Name() string { return s.name }
func (s *stubStrategy) Extract(_ context.Context, _ string) ([]types.SkillRecord, error) {
	return s.recs, s.err
}

func TestPipelineUnionsStrategies(t *testing.T) {
	p := NewPipeline(zerolog.Nop(),
		&stubStrategy{name: "a", recs: []types.SkillRecord{{Name: "python", Type: types.SkillTypeHard}}},
		&stubStrategy{name: "b", recs: []types.SkillRecord{
			{Name: "python", Type: types.SkillTypeHard},
			{Name: "teamwork", Type: types.SkillTypeSoft},
		}},
	)

	got, err := p.Extract(context.Background(), "python and teamwork")
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestPipelineStrategyErrorAborts(t *testing.T) {
	p := NewPipeline(zerolog.Nop(),
		&stubStrategy{name: "a", recs: []types.SkillRecord{{Name: "python", Type: types.SkillTypeHard}}},
		&stubStrategy{name: "b", err: assert.AnError},
	)

	_, err := p.Extract(context.Background(), "python")
	assert.Error(t, err)
}
