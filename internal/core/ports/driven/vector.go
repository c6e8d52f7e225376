package driven

import "context"

// VectorStore persists per-user task embeddings in a durable key-value store.
//
// Storage is namespaced by user: two users' vectors never collide and a read
// for one user can never observe another's entries. Within a user's namespace
// there is exactly one entry per task id; writes are last-write-wins upserts
// with no versioning or history.
//
// Infrastructure failures wrap domain.ErrStoreUnavailable.
type VectorStore interface {
	// Put stores or replaces the embedding for (userID, taskID).
	// Idempotent: writing the same pair twice leaves one entry.
	Put(ctx context.Context, userID, taskID string, embedding []float32) error

	// GetAll returns every entry in the user's vector space, in a stable
	// enumeration order. A user that has never been indexed yields an empty
	// slice, not an error.
	GetAll(ctx context.Context, userID string) ([]VectorEntry, error)

	// Delete removes the entry for (userID, taskID).
	// Removing an absent entry is not an error.
	Delete(ctx context.Context, userID, taskID string) error

	// Close releases resources.
	Close() error
}

// VectorEntry is one stored (task id, embedding) pair in a user's vector space.
type VectorEntry struct {
	// TaskID is the task this embedding was computed from.
	TaskID string

	// Embedding is the stored vector. Its length is whatever the embedding
	// provider produced when the entry was written; comparisons against a
	// different dimensionality fail fast at query time.
	Embedding []float32
}
