package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	vectors := store.VectorStore()
	ctx := context.Background()

	original := []float32{0.1, -2.5, 3.14159, 0, 1e-7}
	require.NoError(t, vectors.Put(ctx, "u1", "t1", original))

	entries, err := vectors.GetAll(ctx, "u1")

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "t1", entries[0].TaskID)
	// The BLOB codec stores raw float32 bits, so the round trip is exact.
	assert.Equal(t, original, entries[0].Embedding)
}

func TestVectorStore_GetAllNeverIndexed(t *testing.T) {
	store := newTestStore(t)

	entries, err := store.VectorStore().GetAll(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestVectorStore_PutOverwrites(t *testing.T) {
	store := newTestStore(t)
	vectors := store.VectorStore()
	ctx := context.Background()

	require.NoError(t, vectors.Put(ctx, "u1", "t1", []float32{1, 2}))
	require.NoError(t, vectors.Put(ctx, "u1", "t1", []float32{3, 4, 5}))

	entries, err := vectors.GetAll(ctx, "u1")

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, []float32{3, 4, 5}, entries[0].Embedding)
}

func TestVectorStore_UserNamespacesAreIsolated(t *testing.T) {
	store := newTestStore(t)
	vectors := store.VectorStore()
	ctx := context.Background()

	require.NoError(t, vectors.Put(ctx, "alice", "t1", []float32{1}))
	require.NoError(t, vectors.Put(ctx, "bob", "t2", []float32{2}))

	entries, err := vectors.GetAll(ctx, "alice")

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "t1", entries[0].TaskID)
}

func TestVectorStore_Delete(t *testing.T) {
	store := newTestStore(t)
	vectors := store.VectorStore()
	ctx := context.Background()

	require.NoError(t, vectors.Put(ctx, "u1", "t1", []float32{1}))
	require.NoError(t, vectors.Delete(ctx, "u1", "t1"))
	// Deleting an absent entry is not an error.
	require.NoError(t, vectors.Delete(ctx, "u1", "t1"))

	entries, err := vectors.GetAll(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestVectorStore_EnumerationOrderIsStable(t *testing.T) {
	store := newTestStore(t)
	vectors := store.VectorStore()
	ctx := context.Background()

	require.NoError(t, vectors.Put(ctx, "u1", "c", []float32{3}))
	require.NoError(t, vectors.Put(ctx, "u1", "a", []float32{1}))
	require.NoError(t, vectors.Put(ctx, "u1", "b", []float32{2}))

	entries, err := vectors.GetAll(ctx, "u1")

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "a", entries[0].TaskID)
	assert.Equal(t, "b", entries[1].TaskID)
	assert.Equal(t, "c", entries[2].TaskID)
}

func TestEncodeDecodeEmbedding(t *testing.T) {
	vec := []float32{1.5, -0.25, 3.9e8}

	decoded, err := decodeEmbedding(encodeEmbedding(vec))

	require.NoError(t, err)
	assert.Equal(t, vec, decoded)
}

func TestDecodeEmbedding_InvalidLength(t *testing.T) {
	_, err := decodeEmbedding([]byte{1, 2, 3})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a multiple of 4")
}
