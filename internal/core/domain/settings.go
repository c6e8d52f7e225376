package domain

const unknownDescription = "Unknown"

// EmbeddingProvider identifies a service that turns text into vectors.
type EmbeddingProvider string

// Available embedding providers.
const (
	// EmbeddingProviderHash is the deterministic offline embedder.
	// It exists for reproducibility and network-free operation, not for
	// semantic quality.
	EmbeddingProviderHash EmbeddingProvider = "hash"

	// EmbeddingProviderOpenAI is the OpenAI cloud embedding API.
	EmbeddingProviderOpenAI EmbeddingProvider = "openai"
)

// IsValid returns true if the embedding provider is recognised.
func (p EmbeddingProvider) IsValid() bool {
	switch p {
	case EmbeddingProviderHash, EmbeddingProviderOpenAI:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p EmbeddingProvider) RequiresAPIKey() bool {
	return p == EmbeddingProviderOpenAI
}

// IsLocal returns true if this provider runs without network access.
func (p EmbeddingProvider) IsLocal() bool {
	return p == EmbeddingProviderHash
}

// String returns the string representation.
func (p EmbeddingProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p EmbeddingProvider) Description() string {
	switch p {
	case EmbeddingProviderHash:
		return "Hash (deterministic, offline)"
	case EmbeddingProviderOpenAI:
		return "OpenAI (cloud)"
	default:
		return unknownDescription
	}
}

// AllEmbeddingProviders returns every provider in presentation order.
func AllEmbeddingProviders() []EmbeddingProvider {
	return []EmbeddingProvider{
		EmbeddingProviderHash,
		EmbeddingProviderOpenAI,
	}
}

// VectorBackend identifies the durable store holding per-user embeddings.
type VectorBackend string

// Available vector backends.
const (
	// VectorBackendSQLite keeps vectors in the local metadata database.
	VectorBackendSQLite VectorBackend = "sqlite"

	// VectorBackendRedis keeps vectors in a Redis hash per user.
	VectorBackendRedis VectorBackend = "redis"
)

// IsValid returns true if the vector backend is recognised.
func (b VectorBackend) IsValid() bool {
	switch b {
	case VectorBackendSQLite, VectorBackendRedis:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b VectorBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b VectorBackend) Description() string {
	switch b {
	case VectorBackendSQLite:
		return "SQLite (local file)"
	case VectorBackendRedis:
		return "Redis (server)"
	default:
		return unknownDescription
	}
}

// AllVectorBackends returns every backend in presentation order.
func AllVectorBackends() []VectorBackend {
	return []VectorBackend{
		VectorBackendSQLite,
		VectorBackendRedis,
	}
}

// EmbeddingSettings holds embedding provider configuration.
// Which provider is active is a process-wide decision made at startup;
// services never switch providers per call.
type EmbeddingSettings struct {
	// Provider is the embedding service provider.
	Provider EmbeddingProvider

	// Model is the embedding model name (cloud providers only).
	Model string

	// BaseURL overrides the API endpoint (for OpenAI-compatible servers).
	BaseURL string

	// APIKey is the API credential. Opaque to the core.
	APIKey string
}

// IsConfigured returns true if the embedding provider is usable as set.
func (e EmbeddingSettings) IsConfigured() bool {
	if !e.Provider.IsValid() {
		return false
	}
	if e.Provider.RequiresAPIKey() && e.APIKey == "" {
		return false
	}
	return true
}

// VectorSettings holds vector store configuration.
type VectorSettings struct {
	// Backend is the durable store for embeddings.
	Backend VectorBackend

	// RedisAddr is the Redis server address (redis backend only).
	RedisAddr string

	// RedisPassword is the Redis credential (redis backend only).
	RedisPassword string
}

// StorageSettings holds local storage configuration.
type StorageSettings struct {
	// DataDir is the directory holding the metadata database.
	// Empty means the default under the user's home directory.
	DataDir string
}

// AppSettings is the complete application configuration.
type AppSettings struct {
	Embedding EmbeddingSettings
	Vector    VectorSettings
	Storage   StorageSettings
}

// DefaultAppSettings returns settings for a fresh installation: the
// deterministic hash embedder and the local SQLite vector backend, so the
// tool works with no network dependency or credentials.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Embedding: EmbeddingSettings{
			Provider: EmbeddingProviderHash,
		},
		Vector: VectorSettings{
			Backend:   VectorBackendSQLite,
			RedisAddr: "localhost:6379",
		},
	}
}

// DefaultEmbeddingModels maps providers to their default model.
func DefaultEmbeddingModels() map[EmbeddingProvider]string {
	return map[EmbeddingProvider]string{
		EmbeddingProviderOpenAI: "text-embedding-3-small",
	}
}
