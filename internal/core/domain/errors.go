package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUserNotFound indicates the user is unknown to the system of record.
	// Distinct from a known user with zero tasks, which is a valid empty state.
	ErrUserNotFound = errors.New("user not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrProviderUnavailable indicates embedding generation could not complete
	// (network, auth or model failure). During indexing this is recovered per
	// task; during querying it is surfaced, since no answer can be computed.
	ErrProviderUnavailable = errors.New("embedding provider unavailable")

	// ErrStoreUnavailable indicates the vector store could not be read or
	// written. Always surfaced, never swallowed: it means the index is unusable.
	ErrStoreUnavailable = errors.New("vector store unavailable")

	// ErrDimensionMismatch indicates two embeddings of different lengths were
	// compared, typically after an embedding provider swap left a user's
	// vector space with mixed dimensionalities.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
