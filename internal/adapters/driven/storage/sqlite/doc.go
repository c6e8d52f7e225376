// Package sqlite provides durable storage backed by a single SQLite database.
//
// One Store owns the database connection; typed wrappers expose the
// driven.UserStore, driven.TaskStore and driven.VectorStore interfaces over
// it. Embeddings are stored as little-endian float32 BLOBs with an explicit
// dimensions column, so a provider swap that changes dimensionality is
// visible in the data rather than silently corrupting comparisons.
//
// The driver is modernc.org/sqlite (pure Go, no cgo).
package sqlite
