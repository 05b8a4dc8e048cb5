package memory

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float32
	}{
		{name: "identical", a: []float32{1, 0, 0}, b: []float32{1, 0, 0}, want: 1},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, want: 0},
		{name: "opposite", a: []float32{1, 0}, b: []float32{-1, 0}, want: -1},
		{name: "zero vector", a: []float32{0, 0}, b: []float32{1, 1}, want: 0},
		{name: "dimension mismatch", a: []float32{1}, b: []float32{1, 0}, want: 0},
		{name: "empty", a: nil, b: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineSimilarityScaleInvariant(t *testing.T) {
	a := []float32{0.3, 0.7, 0.2}
	b := []float32{0.1, 0.9, 0.4}
	scaled := []float32{0.2, 1.8, 0.8}

	if diff := CosineSimilarity(a, b) - CosineSimilarity(a, scaled); math.Abs(float64(diff)) > 1e-6 {
		t.Errorf("similarity changed under scaling by %v", diff)
	}
}

func TestTopKCosine(t *testing.T) {
	query := []float32{1, 0}
	haystack := [][]float32{
		{0, 1},      // orthogonal
		{1, 0},      // identical
		{0.7, 0.7},  // close
		{-1, 0},     // opposite
	}

	got := TopKCosine(haystack, query, 2)
	if len(got) != 2 {
		t.Fatalf("TopKCosine() returned %d results, want 2", len(got))
	}
	if got[0].Idx != 1 {
		t.Errorf("best match idx = %d, want 1", got[0].Idx)
	}
	if got[1].Idx != 2 {
		t.Errorf("second match idx = %d, want 2", got[1].Idx)
	}
	if got[0].Score < got[1].Score {
		t.Errorf("results not in descending score order: %v", got)
	}
}

func TestTopKCosineEdgeCases(t *testing.T) {
	if got := TopKCosine(nil, []float32{1}, 3); got != nil {
		t.Errorf("empty haystack should yield nil, got %v", got)
	}
	if got := TopKCosine([][]float32{{1}}, []float32{1}, 0); got != nil {
		t.Errorf("topK=0 should yield nil, got %v", got)
	}
	// topK larger than the haystack returns everything
	if got := TopKCosine([][]float32{{1}, {0.5}}, []float32{1}, 10); len(got) != 2 {
		t.Errorf("TopKCosine() = %v, want all 2 entries", got)
	}
}

func TestNoopEmbeddingProvider(t *testing.T) {
	vecs, err := NoopEmbeddingProvider{}.Embed([]string{"a", "b"}, 4)
	if err != nil {
		t.Fatalf("Embed() error: %v", err)
	}
	if len(vecs) != 2 {
		t.Fatalf("Embed() returned %d vectors, want 2", len(vecs))
	}
	for i, v := range vecs {
		if len(v) != 4 {
			t.Errorf("vector %d has dimension %d, want 4", i, len(v))
		}
	}
}

func TestInvalidDimensionError(t *testing.T) {
	err := &InvalidDimensionError{Expected: 8, Got: 4}
	want := "invalid embedding dimension: expected 8, got 4"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
