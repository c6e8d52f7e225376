package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddingProvider_IsValid(t *testing.T) {
	assert.True(t, EmbeddingProviderHash.IsValid())
	assert.True(t, EmbeddingProviderOpenAI.IsValid())
	assert.False(t, EmbeddingProvider("ollama").IsValid())
	assert.False(t, EmbeddingProvider("").IsValid())
}

func TestEmbeddingProvider_RequiresAPIKey(t *testing.T) {
	assert.False(t, EmbeddingProviderHash.RequiresAPIKey())
	assert.True(t, EmbeddingProviderOpenAI.RequiresAPIKey())
}

func TestEmbeddingProvider_IsLocal(t *testing.T) {
	assert.True(t, EmbeddingProviderHash.IsLocal())
	assert.False(t, EmbeddingProviderOpenAI.IsLocal())
}

func TestVectorBackend_IsValid(t *testing.T) {
	assert.True(t, VectorBackendSQLite.IsValid())
	assert.True(t, VectorBackendRedis.IsValid())
	assert.False(t, VectorBackend("pinecone").IsValid())
}

func TestEmbeddingSettings_IsConfigured(t *testing.T) {
	hash := EmbeddingSettings{Provider: EmbeddingProviderHash}
	assert.True(t, hash.IsConfigured())

	openaiNoKey := EmbeddingSettings{Provider: EmbeddingProviderOpenAI, Model: "text-embedding-3-small"}
	assert.False(t, openaiNoKey.IsConfigured())

	openaiWithKey := openaiNoKey
	openaiWithKey.APIKey = "sk-test"
	assert.True(t, openaiWithKey.IsConfigured())

	unknown := EmbeddingSettings{Provider: "mystery"}
	assert.False(t, unknown.IsConfigured())
}

func TestDefaultAppSettings(t *testing.T) {
	defaults := DefaultAppSettings()

	assert.Equal(t, EmbeddingProviderHash, defaults.Embedding.Provider)
	assert.Equal(t, VectorBackendSQLite, defaults.Vector.Backend)
	assert.True(t, defaults.Embedding.IsConfigured())
}

func TestDescriptions(t *testing.T) {
	assert.NotEqual(t, unknownDescription, EmbeddingProviderHash.Description())
	assert.NotEqual(t, unknownDescription, EmbeddingProviderOpenAI.Description())
	assert.Equal(t, unknownDescription, EmbeddingProvider("nope").Description())
	assert.Equal(t, unknownDescription, VectorBackend("nope").Description())
}
