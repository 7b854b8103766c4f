package embedding

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	v := Normalize([]float32{3, 4})
	assert.InDelta(t, 0.6, float64(v[0]), 1e-6)
	assert.InDelta(t, 0.8, float64(v[1]), 1e-6)

	// Zero vector stays zero instead of dividing by zero.
	z := Normalize([]float32{0, 0, 0})
	assert.Equal(t, []float32{0, 0, 0}, z)
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float64
	}{
		{name: "Identical", a: []float32{1, 0}, b: []float32{1, 0}, expected: 1.0},
		{name: "Orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, expected: 0.0},
		{name: "Opposite", a: []float32{1, 0}, b: []float32{-1, 0}, expected: -1.0},
		{name: "Unnormalized Inputs", a: []float32{2, 0}, b: []float32{5, 0}, expected: 1.0},
		{name: "Mismatched Lengths", a: []float32{1}, b: []float32{1, 0}, expected: 0.0},
		{name: "Zero Vector", a: []float32{0, 0}, b: []float32{1, 0}, expected: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Cosine(tt.a, tt.b), 1e-9)
		})
	}
}

func TestCentroid(t *testing.T) {
	c := Centroid([][]float32{{1, 0}, {0, 1}})
	require.Len(t, c, 2)
	// Mean is (0.5, 0.5); normalized to (1/sqrt2, 1/sqrt2).
	assert.InDelta(t, 1/math.Sqrt2, float64(c[0]), 1e-6)
	assert.InDelta(t, 1/math.Sqrt2, float64(c[1]), 1e-6)

	assert.Nil(t, Centroid(nil))
}

func TestStaticEmbed(t *testing.T) {
	s := NewStatic(2, map[string][]float32{
		"python": {1, 0},
		"go":     {0, 2}, // normalized on construction
	})

	vecs, err := s.Embed(context.Background(), []string{"python", "go"})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0}, vecs[0])
	assert.Equal(t, []float32{0, 1}, vecs[1])
}

func TestStaticEmbedUnknownIsDeterministic(t *testing.T) {
	s := NewStatic(8, nil)

	a, err := s.Embed(context.Background(), []string{"unknown phrase"})
	require.NoError(t, err)
	b, err := s.Embed(context.Background(), []string{"unknown phrase"})
	require.NoError(t, err)
	assert.Equal(t, a[0], b[0])

	// Result is unit length.
	assert.InDelta(t, 1.0, Cosine(a[0], a[0]), 1e-6)
}
