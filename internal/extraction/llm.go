package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/coltonk1/trackify-jobs/internal/embedding"
	"github.com/coltonk1/trackify-jobs/internal/llm"
	"github.com/coltonk1/trackify-jobs/internal/prompts"
	"github.com/coltonk1/trackify-jobs/internal/types"
)

// llmReconcileThreshold is the minimum similarity for snapping an LLM
// skill name to its nearest dictionary entry. Below it the LLM's own
// wording is kept.
const llmReconcileThreshold = 0.75

// LLMStrategy asks a language model to list the skills in the text, then
// reconciles each name against the dictionary: exact matches adopt the
// canonical record, near matches snap to the closest dictionary entry by
// embedding, everything else is kept verbatim with the model's type.
type LLMStrategy struct {
	client   llm.Client
	tier     llm.ModelTier
	provider embedding.Provider
	index    *DictIndex
}

// NewLLMStrategy creates the strategy. index may be nil to skip
// embedding-based reconciliation.
func NewLLMStrategy(client llm.Client, tier llm.ModelTier, provider embedding.Provider, index *DictIndex) *LLMStrategy {
	return &LLMStrategy{client: client, tier: tier, provider: provider, index: index}
}

// Name implements Strategy.
func (s *LLMStrategy) Name() string { return "llm" }

type llmSkill struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type llmSkillList struct {
	Skills []llmSkill `json:"skills"`
}

// Extract implements Strategy.
func (s *LLMStrategy) Extract(ctx context.Context, text string) ([]types.SkillRecord, error) {
	template, err := prompts.Get("extraction.json", "skill_extraction")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{"Text": text})

	raw, err := s.client.GenerateJSON(ctx, prompt, s.tier)
	if err != nil {
		return nil, err
	}
	if err := llm.ValidateSkillList(raw); err != nil {
		return nil, fmt.Errorf("rejecting model output: %w", err)
	}

	var list llmSkillList
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("failed to parse model output: %w", err)
	}

	records := make([]types.SkillRecord, 0, len(list.Skills))
	var unresolved []int // indices into records needing embedding reconciliation
	for _, skill := range list.Skills {
		name := strings.ToLower(strings.TrimSpace(skill.Name))
		skillType, ok := types.ParseSkillType(skill.Type)
		if !ok || !ValidSkillPhrase(name) {
			continue
		}

		rec := types.SkillRecord{Name: name, Type: skillType}
		if s.index != nil {
			if entry, found := s.index.DB().Lookup(name); found {
				if t, typeOK := types.ParseSkillType(entry.Type); typeOK {
					rec = types.SkillRecord{SourceID: entry.ID, Name: entry.Name, Type: t}
				}
			} else {
				unresolved = append(unresolved, len(records))
			}
		}
		records = append(records, rec)
	}

	if len(unresolved) > 0 && s.provider != nil {
		if err := s.reconcile(ctx, records, unresolved); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// reconcile snaps unresolved names to their nearest dictionary entry when
// the embedding similarity clears the threshold. One batched embed call
// covers all unresolved names.
func (s *LLMStrategy) reconcile(ctx context.Context, records []types.SkillRecord, unresolved []int) error {
	names := make([]string, len(unresolved))
	for i, idx := range unresolved {
		names[i] = records[idx].Name
	}

	vecs, err := s.provider.Embed(ctx, names)
	if err != nil {
		return err
	}

	for i, idx := range unresolved {
		entry, sim := s.index.Nearest(vecs[i])
		if sim < llmReconcileThreshold {
			continue
		}
		if t, ok := types.ParseSkillType(entry.Type); ok {
			records[idx] = types.SkillRecord{SourceID: entry.ID, Name: entry.Name, Type: t}
		}
	}
	return nil
}
