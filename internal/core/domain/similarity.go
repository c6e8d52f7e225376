package domain

import (
	"fmt"
	"math"
)

// CosineSimilarity returns the cosine of the angle between a and b,
// in [-1, 1] where 1 means identical direction.
//
// Vectors of different lengths cannot be meaningfully compared; that is a
// dimension mismatch and fails fast with ErrDimensionMismatch rather than
// silently scoring garbage.
//
// A zero-magnitude vector on either side leaves the angle undefined. The
// naive formula would divide by zero; instead the comparison scores
// math.Inf(-1), the lowest possible score, so such an entry can never win a
// scan and NaN never propagates into results.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		va := float64(a[i])
		vb := float64(b[i])
		dot += va * vb
		normA += va * va
		normB += vb * vb
	}

	if normA == 0 || normB == 0 {
		return math.Inf(-1), nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
