package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/semtask/semtask-cli/internal/core/domain"
	"github.com/semtask/semtask-cli/internal/core/ports/driven"
	"github.com/semtask/semtask-cli/internal/core/ports/driving"
	"github.com/semtask/semtask-cli/internal/logger"
)

// Ensure Query implements the interface.
var _ driving.QueryService = (*Query)(nil)

// Query answers free-text queries with the single best-matching task.
type Query struct {
	taskStore        driven.TaskStore
	vectorStore      driven.VectorStore
	embeddingService driven.EmbeddingService
}

// NewQuery creates a new query service.
func NewQuery(
	taskStore driven.TaskStore,
	vectorStore driven.VectorStore,
	embeddingService driven.EmbeddingService,
) *Query {
	return &Query{
		taskStore:        taskStore,
		vectorStore:      vectorStore,
		embeddingService: embeddingService,
	}
}

// Query embeds the text and scans the user's vector space for the highest
// cosine similarity.
//
// The vector space is read before the query is embedded: an empty space
// cannot match anything, so the embedding call (the expensive, network-bound
// step) is skipped entirely. The scan itself is pure in-memory computation.
func (s *Query) Query(ctx context.Context, userID, text string) (*domain.TaskMatch, error) {
	logger.Section("Query Execution")
	logger.Debug("User: %s, query: %q", userID, text)

	text = strings.TrimSpace(text)
	if text == "" {
		logger.Debug("Empty query, no match")
		return nil, nil
	}

	entries, err := s.vectorStore.GetAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load vector space for user %s: %w", userID, err)
	}
	if len(entries) == 0 {
		logger.Debug("Vector space empty, no match")
		return nil, nil
	}
	logger.Debug("Vector space: %d entries", len(entries))

	queryEmbedding, err := s.embeddingService.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	logger.Debug("Query embedding: %d dimensions", len(queryEmbedding))

	bestID, bestScore, err := bestMatch(queryEmbedding, entries)
	if err != nil {
		return nil, fmt.Errorf("scan vector space: %w", err)
	}
	if bestID == "" {
		logger.Debug("No rankable entry, no match")
		return nil, nil
	}
	logger.Info("Best match: task %s (score %.4f)", bestID, bestScore)

	task, err := s.taskStore.Get(ctx, bestID)
	if errors.Is(err, domain.ErrNotFound) {
		// The task was deleted after indexing. Drop the stale entry so it
		// cannot win again, and report no match.
		logger.Warn("Matched task %s no longer exists, removing stale entry", bestID)
		if delErr := s.vectorStore.Delete(ctx, userID, bestID); delErr != nil {
			logger.Warn("Removing stale entry failed: %v", delErr)
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get matched task %s: %w", bestID, err)
	}

	return &domain.TaskMatch{Task: *task, Score: bestScore}, nil
}

// bestMatch runs the linear similarity scan. The running best starts at -Inf
// so any real score wins the first comparison; on exact ties the entry
// enumerated first keeps the win. Entries with a zero-magnitude embedding
// score -Inf and never win. A dimensionality mismatch aborts the scan.
func bestMatch(query []float32, entries []driven.VectorEntry) (string, float64, error) {
	bestID := ""
	bestScore := math.Inf(-1)

	for _, entry := range entries {
		score, err := domain.CosineSimilarity(query, entry.Embedding)
		if err != nil {
			return "", 0, fmt.Errorf("task %s: %w", entry.TaskID, err)
		}
		if score > bestScore {
			bestScore = score
			bestID = entry.TaskID
		}
	}

	return bestID, bestScore, nil
}
