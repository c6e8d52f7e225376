package services

import (
	"context"
	"sort"
	"sync"

	"github.com/semtask/semtask-cli/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockEmbeddingService implements driven.EmbeddingService for testing.
// Vectors come from the fixed map keyed by input text; unknown texts get
// the fallback embedding. failFor injects per-text failures, embedErr
// fails every call.
type mockEmbeddingService struct {
	vectors   map[string][]float32
	embedding []float32
	embedErr  error
	failFor   map[string]error
	dims      int

	mu    sync.Mutex
	calls []string
}

func (m *mockEmbeddingService) Embed(_ context.Context, text string) ([]float32, error) {
	m.mu.Lock()
	m.calls = append(m.calls, text)
	m.mu.Unlock()

	if m.embedErr != nil {
		return nil, m.embedErr
	}
	if err, ok := m.failFor[text]; ok {
		return nil, err
	}
	if v, ok := m.vectors[text]; ok {
		return v, nil
	}
	return m.embedding, nil
}

func (m *mockEmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	result := make([][]float32, len(texts))
	for i, text := range texts {
		v, err := m.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}

func (m *mockEmbeddingService) Dimensions() int {
	if m.dims > 0 {
		return m.dims
	}
	return 5
}

func (m *mockEmbeddingService) ModelName() string {
	return "mock-embed"
}

func (m *mockEmbeddingService) Ping(_ context.Context) error {
	return nil
}

func (m *mockEmbeddingService) Close() error {
	return nil
}

func (m *mockEmbeddingService) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// mockVectorStore implements driven.VectorStore for testing, with
// injectable failures per operation.
type mockVectorStore struct {
	putErr    error
	getErr    error
	deleteErr error

	mu      sync.Mutex
	spaces  map[string]map[string][]float32
	deleted []string
}

func newMockVectorStore() *mockVectorStore {
	return &mockVectorStore{spaces: make(map[string]map[string][]float32)}
}

func (m *mockVectorStore) Put(_ context.Context, userID, taskID string, embedding []float32) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.spaces[userID] == nil {
		m.spaces[userID] = make(map[string][]float32)
	}
	m.spaces[userID][taskID] = embedding
	return nil
}

func (m *mockVectorStore) GetAll(_ context.Context, userID string) ([]driven.VectorEntry, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	space := m.spaces[userID]
	taskIDs := make([]string, 0, len(space))
	for taskID := range space {
		taskIDs = append(taskIDs, taskID)
	}
	sort.Strings(taskIDs)

	entries := make([]driven.VectorEntry, 0, len(space))
	for _, taskID := range taskIDs {
		entries = append(entries, driven.VectorEntry{TaskID: taskID, Embedding: space[taskID]})
	}
	return entries, nil
}

func (m *mockVectorStore) Delete(_ context.Context, userID, taskID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.spaces[userID], taskID)
	m.deleted = append(m.deleted, taskID)
	return nil
}

func (m *mockVectorStore) Close() error {
	return nil
}

func (m *mockVectorStore) entryCount(userID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.spaces[userID])
}
