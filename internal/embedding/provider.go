// Package embedding provides the text embedding abstraction used for
// semantic similarity, plus the vector math that consumes it.
package embedding

import "context"

// Provider maps phrase/skill strings to fixed-length L2-normalized vectors.
// Implementations must be deterministic for a given model version and safe
// for concurrent use; model state is loaded once at startup and read-only
// afterwards.
type Provider interface {
	// Embed returns one normalized vector per input string, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
