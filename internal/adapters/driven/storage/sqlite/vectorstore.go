package sqlite

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/semtask/semtask-cli/internal/core/domain"
	"github.com/semtask/semtask-cli/internal/core/ports/driven"
)

// vectorStore implements driven.VectorStore on the task_vectors table.
type vectorStore struct {
	store *Store
}

var _ driven.VectorStore = (*vectorStore)(nil)

// Put stores or replaces the embedding for (userID, taskID).
func (s *vectorStore) Put(ctx context.Context, userID, taskID string, embedding []float32) error {
	blob := encodeEmbedding(embedding)

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO task_vectors (user_id, task_id, dimensions, embedding, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id, task_id) DO UPDATE SET
			dimensions = excluded.dimensions,
			embedding = excluded.embedding,
			updated_at = excluded.updated_at
	`, userID, taskID, len(embedding), blob, time.Now().UTC())

	if err != nil {
		return fmt.Errorf("%w: saving vector: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// GetAll returns every entry in the user's vector space in task-id order.
func (s *vectorStore) GetAll(ctx context.Context, userID string) ([]driven.VectorEntry, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT task_id, dimensions, embedding
		FROM task_vectors WHERE user_id = ? ORDER BY task_id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: listing vectors: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	entries := make([]driven.VectorEntry, 0)
	for rows.Next() {
		var taskID string
		var dimensions int
		var blob []byte
		if err := rows.Scan(&taskID, &dimensions, &blob); err != nil {
			return nil, fmt.Errorf("%w: scanning vector: %v", domain.ErrStoreUnavailable, err)
		}

		embedding, err := decodeEmbedding(blob)
		if err != nil {
			return nil, fmt.Errorf("vector for task %s: %w", taskID, err)
		}
		if len(embedding) != dimensions {
			return nil, fmt.Errorf("vector for task %s: blob holds %d dimensions, row says %d",
				taskID, len(embedding), dimensions)
		}

		entries = append(entries, driven.VectorEntry{TaskID: taskID, Embedding: embedding})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listing vectors: %v", domain.ErrStoreUnavailable, err)
	}
	return entries, nil
}

// Delete removes the entry for (userID, taskID).
func (s *vectorStore) Delete(ctx context.Context, userID, taskID string) error {
	_, err := s.store.db.ExecContext(ctx, `
		DELETE FROM task_vectors WHERE user_id = ? AND task_id = ?
	`, userID, taskID)
	if err != nil {
		return fmt.Errorf("%w: deleting vector: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Close is a no-op: the parent Store owns the database connection.
func (s *vectorStore) Close() error {
	return nil
}

// encodeEmbedding encodes a float32 slice as a little-endian IEEE 754 BLOB.
// No length prefix; the length is derived from the BLOB size on decode.
// The encoding round-trips bit-exactly.
func encodeEmbedding(vec []float32) []byte {
	b := make([]byte, len(vec)*4)
	for i, v := range vec {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	return b
}

// decodeEmbedding decodes a BLOB produced by encodeEmbedding.
func decodeEmbedding(b []byte) ([]float32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("invalid embedding blob length %d (not a multiple of 4)", len(b))
	}
	vec := make([]float32, len(b)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return vec, nil
}
