package recommend

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SimilarityMatrix holds the cosine similarity of every pair of listings,
// indexed by catalog position.
type SimilarityMatrix struct {
	m *mat.Dense
}

// CosineMatrix computes all pairwise similarities. Rows of v are unit
// length (or zero), so the Gram matrix already is the cosine matrix.
func CosineMatrix(v *Vectors) *SimilarityMatrix {
	var sim mat.Dense
	sim.Mul(v.Weights, v.Weights.T())
	return &SimilarityMatrix{m: &sim}
}

// Len returns the number of listings.
func (s *SimilarityMatrix) Len() int {
	r, _ := s.m.Dims()
	return r
}

func (s *SimilarityMatrix) At(i, j int) float64 {
	return s.m.At(i, j)
}

// MeanRows averages the given rows column-wise: one score per listing.
func (s *SimilarityMatrix) MeanRows(rows []int) []float64 {
	scores := make([]float64, s.Len())
	if len(rows) == 0 {
		return scores
	}
	for _, r := range rows {
		floats.Add(scores, s.m.RawRowView(r))
	}
	floats.Scale(1/float64(len(rows)), scores)
	return scores
}
