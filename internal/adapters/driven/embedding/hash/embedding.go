// Package hash provides a deterministic embedding service for offline use.
//
// Vectors are derived from the character codes of the input text with simple
// modular arithmetic. The same text always yields the same vector, no network
// or credentials are involved, and embedding can never fail. The vectors have
// no semantic quality - the point is reproducibility, for tests and for
// running the tool without a remote provider.
package hash

import (
	"context"

	"github.com/semtask/semtask-cli/internal/core/ports/driven"
)

// Ensure EmbeddingService implements the interface.
var _ driven.EmbeddingService = (*EmbeddingService)(nil)

// multipliers expand the text signature into one component per dimension.
// The vector length is fixed by this table.
var multipliers = [...]int64{1, 2, 3, 5, 7}

// modulus bounds every component to a single digit.
const modulus = 10

// EmbeddingService is the deterministic embedder.
type EmbeddingService struct{}

// NewEmbeddingService creates a new hash embedding service.
func NewEmbeddingService() *EmbeddingService {
	return &EmbeddingService{}
}

// Embed generates a vector embedding for the given text.
func (s *EmbeddingService) Embed(_ context.Context, text string) ([]float32, error) {
	return embed(text), nil
}

// EmbedBatch generates embeddings for multiple texts.
func (s *EmbeddingService) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	result := make([][]float32, len(texts))
	for i, text := range texts {
		result[i] = embed(text)
	}
	return result, nil
}

// embed sums the code points of the text into an integer signature, then
// expands the signature into one digit per dimension. Empty text yields the
// zero vector.
func embed(text string) []float32 {
	var signature int64
	for _, r := range text {
		signature += int64(r)
	}

	v := make([]float32, len(multipliers))
	for i, m := range multipliers {
		v[i] = float32((signature * m) % modulus)
	}
	return v
}

// Dimensions returns the embedding vector size.
func (s *EmbeddingService) Dimensions() int {
	return len(multipliers)
}

// ModelName returns the name of the embedding model being used.
func (s *EmbeddingService) ModelName() string {
	return "hash"
}

// Ping validates the service is reachable. The hash embedder always is.
func (s *EmbeddingService) Ping(_ context.Context) error {
	return nil
}

// Close releases resources.
func (s *EmbeddingService) Close() error {
	return nil
}
