package embedding

import (
	"context"
	"hash/fnv"
	"math"
)

// Static is a deterministic in-memory Provider. Known strings return their
// configured vectors; unknown strings fall back to a hash-derived vector so
// any input embeds to something stable. It backs tests and offline runs
// where the real embedding backend is not available.
type Static struct {
	dim  int
	vecs map[string][]float32
}

// NewStatic builds a Static provider from explicit vectors. All vectors are
// normalized on construction; they must share one dimension. A nil or empty
// map yields a provider serving only hash-derived vectors of dimension dim.
func NewStatic(dim int, vecs map[string][]float32) *Static {
	normalized := make(map[string][]float32, len(vecs))
	for k, v := range vecs {
		cp := make([]float32, len(v))
		copy(cp, v)
		normalized[k] = Normalize(cp)
	}
	return &Static{dim: dim, vecs: normalized}
}

// Embed returns the configured or hash-derived vector for each text.
func (s *Static) Embed(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		if v, ok := s.vecs[t]; ok {
			out[i] = v
			continue
		}
		out[i] = s.hashVector(t)
	}
	return out, nil
}

// hashVector derives a stable pseudo-embedding from the FNV-1a hash chain of
// the input. Distinct strings land far apart, which is all the fallback
// needs to provide.
func (s *Static) hashVector(text string) []float32 {
	v := make([]float32, s.dim)
	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	seed := h.Sum64()
	for i := range v {
		seed = seed*6364136223846793005 + 1442695040888963407
		v[i] = float32(math.Sin(float64(seed % 100003)))
	}
	return Normalize(v)
}
