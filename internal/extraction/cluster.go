package extraction

import (
	"context"
	"sort"
	"strings"

	"github.com/coltonk1/trackify-jobs/internal/embedding"
	"github.com/coltonk1/trackify-jobs/internal/types"
)

// Cluster strategy thresholds. Single-word candidates need a stricter
// match because short strings embed promiscuously.
const (
	clusterLooseThreshold      = 0.65
	clusterSingleWordThreshold = 0.75
	clusterMultiWordThreshold  = 0.70
	clusterCohesionThreshold   = 0.5
)

// ClusterStrategy generates candidate chunks from the text, retrieves each
// candidate's nearest dictionary entry from the vector index, keeps matches
// above a length-dependent threshold, then discards whole clusters of
// matches whose centroid is thematically unrelated to the global centroid
// of everything matched. The cohesion pass removes stray matches from data
// that doesn't relate to the document's actual theme.
type ClusterStrategy struct {
	provider embedding.Provider
	index    *DictIndex
}

// NewClusterStrategy creates the strategy over a prebuilt dictionary index.
func NewClusterStrategy(provider embedding.Provider, index *DictIndex) *ClusterStrategy {
	return &ClusterStrategy{provider: provider, index: index}
}

// Name implements Strategy.
func (s *ClusterStrategy) Name() string { return "cluster" }

type clusterMatch struct {
	entry    int // dictionary-order index
	score    float64
	cluster  int
	skillTyp types.SkillType
}

// Extract implements Strategy.
func (s *ClusterStrategy) Extract(ctx context.Context, text string) ([]types.SkillRecord, error) {
	candidates := chunkCandidates(text)
	if len(candidates) == 0 {
		return nil, nil
	}

	vecs, err := s.provider.Embed(ctx, candidates)
	if err != nil {
		return nil, err
	}

	// Pass 1: loose matches above the length-dependent threshold.
	var matches []clusterMatch
	seen := make(map[int]bool)
	for i, cand := range candidates {
		entry, score := s.index.Nearest(vecs[i])
		skillType, ok := types.ParseSkillType(entry.Type)
		if !ok || skillType != types.SkillTypeHard {
			// Soft skills and certifications match too loosely against
			// free text; this strategy only trusts hard-skill retrieval.
			continue
		}

		threshold := clusterMultiWordThreshold
		if len(strings.Fields(cand)) == 1 {
			threshold = clusterSingleWordThreshold
		}
		if threshold < clusterLooseThreshold {
			threshold = clusterLooseThreshold
		}
		if score < threshold {
			continue
		}

		idx := s.index.IndexOf(entry.ID)
		if idx < 0 || seen[idx] {
			continue
		}
		seen[idx] = true
		matches = append(matches, clusterMatch{
			entry:    idx,
			score:    score,
			cluster:  entry.Cluster,
			skillTyp: skillType,
		})
	}
	if len(matches) == 0 {
		return nil, nil
	}

	// Pass 2: global centroid over every accepted match.
	all := make([][]float32, len(matches))
	byCluster := make(map[int][][]float32)
	for i, m := range matches {
		v := s.index.Vector(m.entry)
		all[i] = v
		byCluster[m.cluster] = append(byCluster[m.cluster], v)
	}
	global := embedding.Centroid(all)

	// Pass 3: keep clusters whose centroid coheres with the global theme.
	kept := make(map[int]bool, len(byCluster))
	for cid, vecs := range byCluster {
		if embedding.Cosine(embedding.Centroid(vecs), global) >= clusterCohesionThreshold {
			kept[cid] = true
		}
	}

	// Pass 4: emit surviving matches, best-scoring first.
	sort.Slice(matches, func(i, j int) bool { return matches[i].score > matches[j].score })
	var out []types.SkillRecord
	for _, m := range matches {
		if !kept[m.cluster] {
			continue
		}
		entry := s.index.DB().At(m.entry)
		out = append(out, types.SkillRecord{
			SourceID: entry.ID,
			Name:     entry.Name,
			Type:     m.skillTyp,
		})
	}
	return out, nil
}

// chunkCandidates approximates noun-chunk generation without a syntactic
// parser: unigrams of alphabetic tokens longer than two characters plus
// bigrams and trigrams over the token stream, deduplicated, in source
// order.
func chunkCandidates(text string) []string {
	tokens := tokenize(text)
	seen := make(map[string]bool)
	var out []string

	add := func(c string) {
		if !seen[c] && ValidSkillPhrase(c) {
			seen[c] = true
			out = append(out, c)
		}
	}

	for i, tok := range tokens {
		if len(tok) > 2 {
			add(tok)
		}
		if i+2 <= len(tokens) {
			add(strings.Join(tokens[i:i+2], " "))
		}
		if i+3 <= len(tokens) {
			add(strings.Join(tokens[i:i+3], " "))
		}
	}
	return out
}
