package services

import (
	"context"
	"fmt"

	"github.com/semtask/semtask-cli/internal/core/ports/driven"
	"github.com/semtask/semtask-cli/internal/core/ports/driving"
	"github.com/semtask/semtask-cli/internal/logger"
)

// Ensure Indexer implements the interface.
var _ driving.IndexService = (*Indexer)(nil)

// Indexer builds per-user vector spaces from the task catalogue.
type Indexer struct {
	taskStore        driven.TaskStore
	vectorStore      driven.VectorStore
	embeddingService driven.EmbeddingService
}

// NewIndexer creates a new indexer.
// All dependencies are required and shared process-wide; the indexer holds
// no connection state of its own.
func NewIndexer(
	taskStore driven.TaskStore,
	vectorStore driven.VectorStore,
	embeddingService driven.EmbeddingService,
) *Indexer {
	return &Indexer{
		taskStore:        taskStore,
		vectorStore:      vectorStore,
		embeddingService: embeddingService,
	}
}

// IndexUser embeds every task the user owns and stores the results.
//
// Tasks are processed strictly sequentially. A task whose embedding fails is
// logged and skipped - the rest of the run continues. A vector store write
// failure aborts the run: an unusable index is never papered over. Because
// each Put is an independent keyed upsert, aborting mid-run leaves a
// partial-but-valid index, and re-running simply overwrites.
func (s *Indexer) IndexUser(ctx context.Context, userID string) (*driving.IndexReport, error) {
	logger.Section("Index Run")
	logger.Debug("User: %s", userID)

	tasks, err := s.taskStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks for user %s: %w", userID, err)
	}

	report := &driving.IndexReport{UserID: userID}

	logger.Info("Indexing %d tasks for user %s", len(tasks), userID)

	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("index cancelled: %w", err)
		}

		embedding, err := s.embeddingService.Embed(ctx, task.Description)
		if err != nil {
			// Per-task isolation: one bad embedding must not abort the batch.
			logger.Error("Embedding task %s failed: %v", task.ID, err)
			report.TasksFailed++
			continue
		}

		if err := s.vectorStore.Put(ctx, userID, task.ID, embedding); err != nil {
			return report, fmt.Errorf("store embedding for task %s: %w", task.ID, err)
		}

		logger.Debug("Indexed task %s (%d dimensions)", task.ID, len(embedding))
		report.TasksIndexed++
	}

	logger.Info("Index complete: %d indexed, %d failed", report.TasksIndexed, report.TasksFailed)
	return report, nil
}
