package redis

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore connects to the server named by SEMTASK_TEST_REDIS
// (e.g. "localhost:6379"). Tests are skipped when it is unset so the suite
// runs without external services.
func newTestStore(t *testing.T) (*VectorStore, string) {
	t.Helper()

	addr := os.Getenv("SEMTASK_TEST_REDIS")
	if addr == "" {
		t.Skip("SEMTASK_TEST_REDIS not set")
	}

	store := NewVectorStore(Config{Addr: addr})
	t.Cleanup(func() { _ = store.Close() })

	userID := "test-" + uuid.NewString()
	t.Cleanup(func() {
		_ = store.client.Del(context.Background(), userKey(userID)).Err()
	})
	return store, userID
}

func TestVectorStore_RoundTrip(t *testing.T) {
	store, userID := newTestStore(t)
	ctx := context.Background()

	original := []float32{0.5, -1.25, 7}
	require.NoError(t, store.Put(ctx, userID, "t1", original))

	entries, err := store.GetAll(ctx, userID)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "t1", entries[0].TaskID)
	assert.Equal(t, original, entries[0].Embedding)
}

func TestVectorStore_GetAllNeverIndexed(t *testing.T) {
	store, userID := newTestStore(t)

	entries, err := store.GetAll(context.Background(), userID)

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestVectorStore_PutOverwritesAndDeletes(t *testing.T) {
	store, userID := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, userID, "t1", []float32{1}))
	require.NoError(t, store.Put(ctx, userID, "t1", []float32{2}))
	require.NoError(t, store.Put(ctx, userID, "t2", []float32{3}))

	entries, err := store.GetAll(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, []float32{2}, entries[0].Embedding)

	require.NoError(t, store.Delete(ctx, userID, "t1"))
	require.NoError(t, store.Delete(ctx, userID, "t1"))

	entries, err = store.GetAll(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "t2", entries[0].TaskID)
}

func TestUserKey(t *testing.T) {
	assert.Equal(t, "user:u1:taskEmbeddings", userKey("u1"))
}
