package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/semtask/semtask-cli/internal/core/ports/driven"
)

// Ensure VectorStore implements the interface.
var _ driven.VectorStore = (*VectorStore)(nil)

// VectorStore is an in-memory implementation of driven.VectorStore.
// Entries enumerate in sorted task-id order, so scans are reproducible.
type VectorStore struct {
	mu     sync.RWMutex
	spaces map[string]map[string][]float32
}

// NewVectorStore creates a new in-memory vector store.
func NewVectorStore() *VectorStore {
	return &VectorStore{spaces: make(map[string]map[string][]float32)}
}

// Put stores or replaces the embedding for (userID, taskID).
func (s *VectorStore) Put(_ context.Context, userID, taskID string, embedding []float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	space, ok := s.spaces[userID]
	if !ok {
		space = make(map[string][]float32)
		s.spaces[userID] = space
	}

	stored := make([]float32, len(embedding))
	copy(stored, embedding)
	space[taskID] = stored
	return nil
}

// GetAll returns every entry in the user's vector space.
func (s *VectorStore) GetAll(_ context.Context, userID string) ([]driven.VectorEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	space := s.spaces[userID]
	entries := make([]driven.VectorEntry, 0, len(space))
	for taskID, embedding := range space {
		stored := make([]float32, len(embedding))
		copy(stored, embedding)
		entries = append(entries, driven.VectorEntry{TaskID: taskID, Embedding: stored})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].TaskID < entries[j].TaskID })
	return entries, nil
}

// Delete removes the entry for (userID, taskID).
func (s *VectorStore) Delete(_ context.Context, userID, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if space, ok := s.spaces[userID]; ok {
		delete(space, taskID)
	}
	return nil
}

// Close releases resources.
func (s *VectorStore) Close() error {
	return nil
}
