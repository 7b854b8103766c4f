package extraction

import (
	"context"
	"fmt"

	"github.com/coltonk1/trackify-jobs/internal/embedding"
	"github.com/coltonk1/trackify-jobs/internal/skilldb"
)

// DictIndex is a flat inner-product index over the embedded skill
// dictionary. Built once at startup; read-only afterwards, so concurrent
// searches need no locking.
type DictIndex struct {
	db   *skilldb.DB
	vecs [][]float32
}

// BuildDictIndex embeds every dictionary name through the provider. This is
// the expensive one-time cost that makes per-request nearest-entry lookups
// cheap.
func BuildDictIndex(ctx context.Context, provider embedding.Provider, db *skilldb.DB) (*DictIndex, error) {
	vecs, err := provider.Embed(ctx, db.Names())
	if err != nil {
		return nil, fmt.Errorf("failed to embed skill dictionary: %w", err)
	}
	if len(vecs) != db.Len() {
		return nil, fmt.Errorf("dictionary index size mismatch: %d vectors for %d entries", len(vecs), db.Len())
	}
	return &DictIndex{db: db, vecs: vecs}, nil
}

// Nearest returns the dictionary entry whose embedding is closest to vec,
// with its cosine similarity. Ties keep the lowest dictionary index.
func (ix *DictIndex) Nearest(vec []float32) (skilldb.Entry, float64) {
	bestIdx, bestSim := 0, -1.0
	for i, v := range ix.vecs {
		if sim := embedding.Cosine(vec, v); sim > bestSim {
			bestIdx, bestSim = i, sim
		}
	}
	return ix.db.At(bestIdx), bestSim
}

// Vector returns the stored embedding for a dictionary-order index.
func (ix *DictIndex) Vector(i int) []float32 { return ix.vecs[i] }

// IndexOf returns the dictionary-order index for an entry id, or -1.
func (ix *DictIndex) IndexOf(id string) int {
	for i := 0; i < ix.db.Len(); i++ {
		if ix.db.At(i).ID == id {
			return i
		}
	}
	return -1
}

// DB exposes the underlying dictionary.
func (ix *DictIndex) DB() *skilldb.DB { return ix.db }
