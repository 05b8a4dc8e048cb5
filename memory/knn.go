package memory

import "sort"

// ScoredIdx pairs a haystack index with its similarity score.
type ScoredIdx struct {
	Idx   int
	Score float32
}

// TopKCosine returns the indices of the topK vectors most similar to
// query by cosine similarity, in descending score order.
func TopKCosine(haystack [][]float32, query []float32, topK int) []ScoredIdx {
	if topK == 0 || len(haystack) == 0 {
		return nil
	}
	scored := make([]ScoredIdx, len(haystack))
	for i, v := range haystack {
		scored[i] = ScoredIdx{Idx: i, Score: CosineSimilarity(v, query)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}
