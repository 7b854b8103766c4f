// Package similarity computes pairwise cosine similarity between two sets
// of named items (phrases or skills) and reduces the matrix to aggregate
// and matched-pair statistics.
package similarity

import (
	"context"
	"math"

	"github.com/coltonk1/trackify-jobs/internal/embedding"
)

// Options controls matrix reduction.
type Options struct {
	// Unique enforces the one-to-one disambiguation used when comparing
	// two skill vocabularies: once a source (resume) item is claimed as
	// the best match for one target (job) item, later rows that argmax to
	// it are excluded from matches, not reassigned to their second best.
	// Phrase-level comparison leaves this off; bag-of-phrase comparison
	// is many-to-many by design.
	Unique bool
}

// Pair records a target item and its closest source item. Similarity is a
// percentage rounded to two decimals.
type Pair struct {
	Target     string
	Source     string
	Similarity float64
}

// Result is the reduced form of one similarity matrix. Average and Max are
// percentages in [0,100] rounded to two decimals; Average <= Max holds for
// any nonempty input.
type Result struct {
	Average float64
	Max     float64
	Pairs   []Pair
}

// Engine embeds item names and reduces their cosine matrix.
type Engine struct {
	provider embedding.Provider
}

// New creates an Engine on top of an embedding provider.
func New(provider embedding.Provider) *Engine {
	return &Engine{provider: provider}
}

// Compare scores how well the source set covers the target set. Rows of the
// matrix are target items (the job side), columns are source items (the
// resume side): each target item is scored by its best source match, so the
// result is not symmetric in its arguments.
//
// Both sides are deduplicated by name (first occurrence wins) before
// embedding. If either side is empty the result is all zeros, never an
// error.
func (e *Engine) Compare(ctx context.Context, target, source []string, opts Options) (*Result, error) {
	target = dedupe(target)
	source = dedupe(source)
	if len(target) == 0 || len(source) == 0 {
		return &Result{Pairs: []Pair{}}, nil
	}

	// One batched call for both sides.
	all := make([]string, 0, len(target)+len(source))
	all = append(all, target...)
	all = append(all, source...)
	vectors, err := e.provider.Embed(ctx, all)
	if err != nil {
		return nil, err
	}
	targetVecs := vectors[:len(target)]
	sourceVecs := vectors[len(target):]

	rowBest := make([]float64, len(target))
	rowArg := make([]int, len(target))
	for i, tv := range targetVecs {
		best, arg := math.Inf(-1), 0
		for j, sv := range sourceVecs {
			// Strict > keeps the first column on ties (stable argmax).
			if sim := embedding.Cosine(tv, sv); sim > best {
				best, arg = sim, j
			}
		}
		rowBest[i] = best
		rowArg[i] = arg
	}

	var sum, max float64
	max = math.Inf(-1)
	for _, v := range rowBest {
		sum += v
		if v > max {
			max = v
		}
	}

	result := &Result{
		Average: round2(sum / float64(len(rowBest)) * 100),
		Max:     round2(max * 100),
		Pairs:   make([]Pair, 0, len(target)),
	}

	claimed := make(map[int]bool, len(source))
	for i := range target {
		j := rowArg[i]
		if opts.Unique && claimed[j] {
			continue
		}
		claimed[j] = true
		result.Pairs = append(result.Pairs, Pair{
			Target:     target[i],
			Source:     source[j],
			Similarity: round2(rowBest[i] * 100),
		})
	}
	return result, nil
}

// dedupe drops repeated names, keeping first occurrences in order.
func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
