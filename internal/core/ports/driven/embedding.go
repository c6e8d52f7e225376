package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// Note: This is separate from VectorStore which persists vectors.
// EmbeddingService generates vectors; VectorStore stores them.
//
// Implementations may include:
//   - Hash (deterministic, offline, for tests and network-free use)
//   - OpenAI (text-embedding-3-small, text-embedding-3-large)
//
// All implementations return complete vectors or an error - never a
// partially-filled vector. Remote implementations wrap transport and API
// failures in domain.ErrProviderUnavailable.
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	// The text is passed to the provider unmodified - no truncation.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts efficiently.
	// This is more efficient than calling Embed in a loop for large batches.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size (e.g., 5, 1536).
	// Every vector produced by this service has exactly this length.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight request.
	// Used at startup to verify connectivity before committing to a provider.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
