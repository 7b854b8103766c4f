package extraction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coltonk1/trackify-jobs/internal/skilldb"
	"github.com/coltonk1/trackify-jobs/internal/types"
)

func loadDB(t *testing.T) *skilldb.DB {
	t.Helper()
	db, err := skilldb.Load()
	require.NoError(t, err)
	return db
}

func TestDictionaryStrategyMatchesKnownSkills(t *testing.T) {
	s := NewDictionaryStrategy(loadDB(t))

	text := "Built services in Python and Flask, with machine learning pipelines on Docker."
	got, err := s.Extract(context.Background(), text)
	require.NoError(t, err)

	names := make(map[string]types.SkillType, len(got))
	for _, r := range got {
		names[r.Name] = r.Type
		assert.NotEmpty(t, r.SourceID)
	}
	assert.Equal(t, types.SkillTypeHard, names["python"])
	assert.Equal(t, types.SkillTypeHard, names["flask"])
	assert.Equal(t, types.SkillTypeHard, names["machine learning"])
	assert.Equal(t, types.SkillTypeHard, names["docker"])
}

func TestDictionaryStrategyPrefersLongestMatch(t *testing.T) {
	s := NewDictionaryStrategy(loadDB(t))

	got, err := s.Extract(context.Background(), "strong machine learning background")
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "machine learning", got[0].Name)
}

func TestDictionaryStrategyDeduplicates(t *testing.T) {
	s := NewDictionaryStrategy(loadDB(t))

	got, err := s.Extract(context.Background(), "python, python, and more python")
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "python", got[0].Name)
}

func TestDictionaryStrategyNoMatches(t *testing.T) {
	s := NewDictionaryStrategy(loadDB(t))

	got, err := s.Extract(context.Background(), "enjoys hiking and long walks")
	require.NoError(t, err)
	assert.Empty(t, got)
}
