package hash

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbed_Deterministic(t *testing.T) {
	svc := NewEmbeddingService()
	ctx := context.Background()

	first, err := svc.Embed(ctx, "water the plants")
	require.NoError(t, err)
	second, err := svc.Embed(ctx, "water the plants")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEmbed_KnownVectors(t *testing.T) {
	// Signature is the sum of code points; components are signature*m % 10
	// for m in {1, 2, 3, 5, 7}. These fixtures pin the formula.
	tests := []struct {
		text string
		want []float32
	}{
		{"buy milk", []float32{7, 4, 1, 5, 9}},
		{"buy bread", []float32{8, 6, 4, 0, 6}},
		{"call mom", []float32{3, 6, 9, 5, 1}},
		{"purchase groceries", []float32{4, 8, 2, 0, 8}},
	}

	svc := NewEmbeddingService()
	for _, tt := range tests {
		got, err := svc.Embed(context.Background(), tt.text)

		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "text %q", tt.text)
	}
}

func TestEmbed_EmptyTextIsZeroVector(t *testing.T) {
	svc := NewEmbeddingService()

	got, err := svc.Embed(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0, 0, 0}, got)
}

func TestEmbed_LengthMatchesDimensions(t *testing.T) {
	svc := NewEmbeddingService()

	got, err := svc.Embed(context.Background(), "anything at all")

	require.NoError(t, err)
	assert.Len(t, got, svc.Dimensions())
}

func TestEmbedBatch(t *testing.T) {
	svc := NewEmbeddingService()

	got, err := svc.EmbedBatch(context.Background(), []string{"buy milk", "call mom"})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []float32{7, 4, 1, 5, 9}, got[0])
	assert.Equal(t, []float32{3, 6, 9, 5, 1}, got[1])
}

func TestPingAndClose(t *testing.T) {
	svc := NewEmbeddingService()

	assert.NoError(t, svc.Ping(context.Background()))
	assert.NoError(t, svc.Close())
	assert.Equal(t, "hash", svc.ModelName())
}
