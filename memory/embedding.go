package memory

import (
	"fmt"
	"math"
)

// InvalidDimensionError reports an embedding vector whose length does
// not match the requested dimension.
type InvalidDimensionError struct {
	Expected int
	Got      int
}

// Error implements the error interface.
func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("invalid embedding dimension: expected %d, got %d", e.Expected, e.Got)
}

// EmbeddingProvider generates fixed-dimension embeddings.
// Implementations must return one vector per input text, each of the
// requested dimension.
type EmbeddingProvider interface {
	Embed(texts []string, dim int) ([][]float32, error)
}

// NoopEmbeddingProvider returns all-zero vectors. Deterministic;
// useful for tests and when embeddings are disabled.
type NoopEmbeddingProvider struct{}

// Embed implements EmbeddingProvider.
func (NoopEmbeddingProvider) Embed(texts []string, dim int) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = make([]float32, dim)
	}
	return out, nil
}

// CosineSimilarity computes the cosine similarity between two
// equal-length vectors. Returns 0 when either vector has zero norm or
// the dimensions differ.
func CosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(na) * math.Sqrt(nb)))
}
