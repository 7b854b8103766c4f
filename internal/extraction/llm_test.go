package extraction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coltonk1/trackify-jobs/internal/embedding"
	"github.com/coltonk1/trackify-jobs/internal/llm"
	"github.com/coltonk1/trackify-jobs/internal/types"
)

type stubLLM struct {
	response string
	err      error
	prompt   string
}

func (s *stubLLM) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}
func (s *stubLLM) GetModel(llm.ModelTier) string { return "stub" }
func (s *stubLLM) Close() error                  { return nil }

func TestLLMStrategyCanonicalizesExactMatches(t *testing.T) {
	client := &stubLLM{response: `{"skills": [
		{"name": "python", "type": "Hard Skill"},
		{"name": "teamwork", "type": "Soft Skill"}
	]}`}

	provider := embedding.NewStatic(8, nil)
	index, err := BuildDictIndex(context.Background(), provider, loadDB(t))
	require.NoError(t, err)

	s := NewLLMStrategy(client, llm.TierLite, provider, index)
	got, err := s.Extract(context.Background(), "some resume text")
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "python", got[0].Name)
	assert.NotEmpty(t, got[0].SourceID)
	assert.Equal(t, types.SkillTypeSoft, got[1].Type)
	assert.Contains(t, client.prompt, "some resume text")
}

func TestLLMStrategyReconcilesNearMatches(t *testing.T) {
	// "py" is not a dictionary name, but its configured vector matches the
	// "python" entry exactly, so reconciliation snaps it to the canonical
	// record.
	vec := []float32{1, 0, 0, 0, 0, 0, 0, 0}
	provider := embedding.NewStatic(8, map[string][]float32{
		"python": vec,
		"py":     vec,
	})
	index, err := BuildDictIndex(context.Background(), provider, loadDB(t))
	require.NoError(t, err)

	client := &stubLLM{response: `{"skills": [{"name": "py", "type": "Hard Skill"}]}`}
	s := NewLLMStrategy(client, llm.TierLite, provider, index)

	got, err := s.Extract(context.Background(), "python work")
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "python", got[0].Name)
	assert.Equal(t, "KS0001", got[0].SourceID)
}

func TestLLMStrategyKeepsUnmatchedNames(t *testing.T) {
	client := &stubLLM{response: `{"skills": [{"name": "quantum basket weaving", "type": "Hard Skill"}]}`}

	// High dimension keeps hash-derived vectors well below the
	// reconciliation threshold against every dictionary entry.
	provider := embedding.NewStatic(64, nil)
	index, err := BuildDictIndex(context.Background(), provider, loadDB(t))
	require.NoError(t, err)

	s := NewLLMStrategy(client, llm.TierLite, provider, index)
	got, err := s.Extract(context.Background(), "text")
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "quantum basket weaving", got[0].Name)
	assert.Empty(t, got[0].SourceID)
}

func TestLLMStrategyRejectsMalformedOutput(t *testing.T) {
	client := &stubLLM{response: `{"skills": [{"name": "python", "type": "Gadget"}]}`}

	s := NewLLMStrategy(client, llm.TierLite, nil, nil)
	_, err := s.Extract(context.Background(), "text")
	assert.Error(t, err)
}

func TestLLMStrategyPropagatesBackendError(t *testing.T) {
	client := &stubLLM{err: &types.ModelUnavailableError{Backend: "llm"}}

	s := NewLLMStrategy(client, llm.TierLite, nil, nil)
	_, err := s.Extract(context.Background(), "text")
	require.Error(t, err)

	var unavailable *types.ModelUnavailableError
	assert.ErrorAs(t, err, &unavailable)
}

func TestLLMStrategyDropsInvalidNames(t *testing.T) {
	client := &stubLLM{response: `{"skills": [
		{"name": "a very long skill phrase", "type": "Hard Skill"},
		{"name": "python", "type": "Hard Skill"}
	]}`}

	s := NewLLMStrategy(client, llm.TierLite, nil, nil)
	got, err := s.Extract(context.Background(), "text")
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "python", got[0].Name)
}
