// Package redis provides a driven.VectorStore backed by a Redis server.
//
// Each user's vector space is one Redis hash named "user:<id>:taskEmbeddings";
// fields are task ids and values are JSON-encoded vectors. The whole space is
// read with a single HGETALL, which is exactly the one query pattern the
// store needs to serve efficiently.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/semtask/semtask-cli/internal/core/domain"
	"github.com/semtask/semtask-cli/internal/core/ports/driven"
)

// Ensure VectorStore implements the interface.
var _ driven.VectorStore = (*VectorStore)(nil)

// Config holds configuration for the Redis vector store.
type Config struct {
	// Addr is the Redis server address (host:port).
	Addr string

	// Password is the Redis credential. Empty means no auth.
	Password string

	// DB is the Redis database number.
	DB int
}

// VectorStore persists per-user embeddings in Redis hashes.
type VectorStore struct {
	client *redis.Client
}

// NewVectorStore creates a Redis vector store with its own client.
func NewVectorStore(cfg Config) *VectorStore {
	return &VectorStore{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

// NewVectorStoreWithClient creates a Redis vector store around an existing client.
func NewVectorStoreWithClient(client *redis.Client) *VectorStore {
	return &VectorStore{client: client}
}

// userKey names the hash holding one user's vector space.
func userKey(userID string) string {
	return fmt.Sprintf("user:%s:taskEmbeddings", userID)
}

// Put stores or replaces the embedding for (userID, taskID).
// HSET on an existing field overwrites it, so re-indexing is last-write-wins.
func (s *VectorStore) Put(ctx context.Context, userID, taskID string, embedding []float32) error {
	value, err := json.Marshal(embedding)
	if err != nil {
		return fmt.Errorf("encoding vector: %w", err)
	}

	if err := s.client.HSet(ctx, userKey(userID), taskID, value).Err(); err != nil {
		return fmt.Errorf("%w: saving vector: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// GetAll returns every entry in the user's vector space in task-id order.
// A missing hash is a user that has never been indexed: an empty slice.
func (s *VectorStore) GetAll(ctx context.Context, userID string) ([]driven.VectorEntry, error) {
	fields, err := s.client.HGetAll(ctx, userKey(userID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: listing vectors: %v", domain.ErrStoreUnavailable, err)
	}

	taskIDs := make([]string, 0, len(fields))
	for taskID := range fields {
		taskIDs = append(taskIDs, taskID)
	}
	sort.Strings(taskIDs)

	entries := make([]driven.VectorEntry, 0, len(fields))
	for _, taskID := range taskIDs {
		var embedding []float32
		if err := json.Unmarshal([]byte(fields[taskID]), &embedding); err != nil {
			return nil, fmt.Errorf("decoding vector for task %s: %w", taskID, err)
		}
		entries = append(entries, driven.VectorEntry{TaskID: taskID, Embedding: embedding})
	}
	return entries, nil
}

// Delete removes the entry for (userID, taskID).
// Removing an absent field is not an error.
func (s *VectorStore) Delete(ctx context.Context, userID, taskID string) error {
	if err := s.client.HDel(ctx, userKey(userID), taskID).Err(); err != nil {
		return fmt.Errorf("%w: deleting vector: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Ping verifies the server is reachable.
func (s *VectorStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Close releases the client connection.
func (s *VectorStore) Close() error {
	return s.client.Close()
}
