package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semtask/semtask-cli/internal/adapters/driven/embedding/hash"
	"github.com/semtask/semtask-cli/internal/adapters/driven/storage/memory"
	"github.com/semtask/semtask-cli/internal/core/domain"
)

// newQueryFixture wires a query service and an indexer over shared in-memory
// stores and the deterministic hash embedder, seeded with the given tasks.
func newQueryFixture(t *testing.T, descriptions map[string]string) (*Query, *mockVectorStore, *memory.TaskStore) {
	t.Helper()

	users := memory.NewUserStore()
	tasks := memory.NewTaskStore(users)
	vectors := newMockVectorStore()
	embedder := hash.NewEmbeddingService()
	seedTasks(t, tasks, users, "u1", descriptions)

	indexer := NewIndexer(tasks, vectors, embedder)
	_, err := indexer.IndexUser(context.Background(), "u1")
	require.NoError(t, err)

	return NewQuery(tasks, vectors, embedder), vectors, tasks
}

func TestQuery_FindsSemanticNeighbour(t *testing.T) {
	query, _, _ := newQueryFixture(t, map[string]string{
		"t1": "buy milk",
		"t2": "buy bread",
		"t3": "call mom",
	})

	match, err := query.Query(context.Background(), "u1", "purchase groceries")

	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "t2", match.Task.ID)
	assert.Equal(t, "buy bread", match.Task.Description)
	assert.Greater(t, match.Score, 0.0)
	assert.LessOrEqual(t, match.Score, 1.0)
}

func TestQuery_ExactTextIsPerfectMatch(t *testing.T) {
	query, _, _ := newQueryFixture(t, map[string]string{
		"t1": "buy milk",
		"t2": "call mom",
	})

	match, err := query.Query(context.Background(), "u1", "buy milk")

	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "t1", match.Task.ID)
	assert.InDelta(t, 1.0, match.Score, 1e-9)
}

func TestQuery_EmptyText(t *testing.T) {
	users := memory.NewUserStore()
	tasks := memory.NewTaskStore(users)
	vectors := newMockVectorStore()
	embedder := &mockEmbeddingService{embedding: []float32{1}}
	query := NewQuery(tasks, vectors, embedder)

	for _, text := range []string{"", "   ", "\t\n"} {
		match, err := query.Query(context.Background(), "u1", text)

		require.NoError(t, err)
		assert.Nil(t, match)
	}
	// Blank queries never reach the provider.
	assert.Equal(t, 0, embedder.callCount())
}

func TestQuery_EmptyVectorSpaceSkipsProvider(t *testing.T) {
	users := memory.NewUserStore()
	tasks := memory.NewTaskStore(users)
	vectors := newMockVectorStore()
	embedder := &mockEmbeddingService{embedding: []float32{1}}
	query := NewQuery(tasks, vectors, embedder)

	match, err := query.Query(context.Background(), "u1", "anything")

	require.NoError(t, err)
	assert.Nil(t, match)
	assert.Equal(t, 0, embedder.callCount())
}

func TestQuery_StoreFailurePropagates(t *testing.T) {
	users := memory.NewUserStore()
	tasks := memory.NewTaskStore(users)
	vectors := newMockVectorStore()
	vectors.getErr = domain.ErrStoreUnavailable
	query := NewQuery(tasks, vectors, &mockEmbeddingService{embedding: []float32{1}})

	match, err := query.Query(context.Background(), "u1", "anything")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Nil(t, match)
}

func TestQuery_EmbedFailurePropagates(t *testing.T) {
	users := memory.NewUserStore()
	tasks := memory.NewTaskStore(users)
	vectors := newMockVectorStore()
	require.NoError(t, vectors.Put(context.Background(), "u1", "t1", []float32{1, 2}))

	embedder := &mockEmbeddingService{embedErr: domain.ErrProviderUnavailable}
	query := NewQuery(tasks, vectors, embedder)

	match, err := query.Query(context.Background(), "u1", "anything")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
	assert.Nil(t, match)
}

func TestQuery_DimensionMismatchFailsFast(t *testing.T) {
	users := memory.NewUserStore()
	tasks := memory.NewTaskStore(users)
	vectors := newMockVectorStore()
	require.NoError(t, vectors.Put(context.Background(), "u1", "t1", []float32{1, 2, 3}))

	embedder := &mockEmbeddingService{embedding: []float32{1, 2}}
	query := NewQuery(tasks, vectors, embedder)

	match, err := query.Query(context.Background(), "u1", "anything")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
	assert.Nil(t, match)
}

func TestQuery_StaleEntryIsDroppedLazily(t *testing.T) {
	query, vectors, tasks := newQueryFixture(t, map[string]string{
		"t1": "buy milk",
	})

	// Delete the task from the system of record after it was indexed.
	require.NoError(t, tasks.Delete(context.Background(), "t1"))

	match, err := query.Query(context.Background(), "u1", "buy milk")

	require.NoError(t, err)
	assert.Nil(t, match)
	// The stale vector entry was removed so it cannot win again.
	assert.Equal(t, 0, vectors.entryCount("u1"))
	assert.Contains(t, vectors.deleted, "t1")
}

func TestQuery_TieBreakPrefersFirstEnumerated(t *testing.T) {
	users := memory.NewUserStore()
	tasks := memory.NewTaskStore(users)
	vectors := newMockVectorStore()
	ctx := context.Background()
	require.NoError(t, users.Save(ctx, domain.User{ID: "u1"}))
	require.NoError(t, tasks.Save(ctx, domain.Task{ID: "a", UserID: "u1", Description: "first"}))
	require.NoError(t, tasks.Save(ctx, domain.Task{ID: "b", UserID: "u1", Description: "second"}))
	// Identical embeddings produce identical scores.
	require.NoError(t, vectors.Put(ctx, "u1", "b", []float32{1, 0}))
	require.NoError(t, vectors.Put(ctx, "u1", "a", []float32{1, 0}))

	embedder := &mockEmbeddingService{embedding: []float32{1, 0}}
	query := NewQuery(tasks, vectors, embedder)

	match, err := query.Query(ctx, "u1", "anything")

	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "a", match.Task.ID)
}

func TestQuery_ZeroVectorsNeverMatch(t *testing.T) {
	users := memory.NewUserStore()
	tasks := memory.NewTaskStore(users)
	vectors := newMockVectorStore()
	ctx := context.Background()
	require.NoError(t, tasks.Save(ctx, domain.Task{ID: "t1", UserID: "u1", Description: "zeroed"}))
	require.NoError(t, vectors.Put(ctx, "u1", "t1", []float32{0, 0, 0}))

	embedder := &mockEmbeddingService{embedding: []float32{1, 2, 3}}
	query := NewQuery(tasks, vectors, embedder)

	match, err := query.Query(ctx, "u1", "anything")

	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestQuery_NegativeScoresStillWin(t *testing.T) {
	users := memory.NewUserStore()
	tasks := memory.NewTaskStore(users)
	vectors := newMockVectorStore()
	ctx := context.Background()
	require.NoError(t, tasks.Save(ctx, domain.Task{ID: "t1", UserID: "u1", Description: "opposite"}))
	require.NoError(t, vectors.Put(ctx, "u1", "t1", []float32{-1, 0}))

	embedder := &mockEmbeddingService{embedding: []float32{1, 0}}
	query := NewQuery(tasks, vectors, embedder)

	match, err := query.Query(ctx, "u1", "anything")

	// A best score of -1 is still the best score.
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "t1", match.Task.ID)
	assert.InDelta(t, -1.0, match.Score, 1e-9)
}
