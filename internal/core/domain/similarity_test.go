package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity_SelfIsOne(t *testing.T) {
	vectors := [][]float32{
		{1, 0, 0},
		{3, -4, 5},
		{0.1, 0.2, 0.3, 0.4, 0.5},
	}

	for _, v := range vectors {
		score, err := CosineSimilarity(v, v)

		require.NoError(t, err)
		assert.InDelta(t, 1.0, score, 1e-9)
	}
}

func TestCosineSimilarity_Symmetric(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{-4, 5, 0.5}

	ab, err := CosineSimilarity(a, b)
	require.NoError(t, err)
	ba, err := CosineSimilarity(b, a)
	require.NoError(t, err)

	assert.Equal(t, ab, ba)
}

func TestCosineSimilarity_KnownValues(t *testing.T) {
	// Orthogonal vectors score 0.
	score, err := CosineSimilarity([]float32{1, 0}, []float32{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, score, 1e-9)

	// Opposite vectors score -1.
	score, err = CosineSimilarity([]float32{2, 2}, []float32{-2, -2})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, score, 1e-9)
}

func TestCosineSimilarity_ZeroVectorScoresLowest(t *testing.T) {
	zero := []float32{0, 0, 0}
	v := []float32{1, 2, 3}

	score, err := CosineSimilarity(zero, v)
	require.NoError(t, err)
	assert.True(t, math.IsInf(score, -1), "zero vector must score -Inf, got %v", score)
	assert.False(t, math.IsNaN(score))

	// Same rule on the other side.
	score, err = CosineSimilarity(v, zero)
	require.NoError(t, err)
	assert.True(t, math.IsInf(score, -1))
}

func TestCosineSimilarity_DimensionMismatch(t *testing.T) {
	_, err := CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
