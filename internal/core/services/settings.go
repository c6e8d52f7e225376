package services

import (
	"fmt"

	"github.com/semtask/semtask-cli/internal/core/domain"
	"github.com/semtask/semtask-cli/internal/core/ports/driven"
	"github.com/semtask/semtask-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyEmbedProvider = "embedding.provider"
	keyEmbedModel    = "embedding.model"
	keyEmbedBaseURL  = "embedding.base_url"
	keyEmbedAPIKey   = "embedding.api_key"
	keyVectorBackend = "vector.backend"
	keyRedisAddr     = "redis.addr"
	keyRedisPassword = "redis.password"
	keyStorageDir    = "storage.dir"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Embedding: domain.EmbeddingSettings{
			Provider: s.getProvider(defaults.Embedding.Provider),
			Model:    s.getString(keyEmbedModel, defaults.Embedding.Model),
			BaseURL:  s.configStore.GetString(keyEmbedBaseURL), // No default - empty means the provider's own endpoint
			APIKey:   s.configStore.GetString(keyEmbedAPIKey),
		},
		Vector: domain.VectorSettings{
			Backend:       s.getBackend(defaults.Vector.Backend),
			RedisAddr:     s.getString(keyRedisAddr, defaults.Vector.RedisAddr),
			RedisPassword: s.configStore.GetString(keyRedisPassword),
		},
		Storage: domain.StorageSettings{
			DataDir: s.configStore.GetString(keyStorageDir),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyEmbedProvider, settings.Embedding.Provider.String()); err != nil {
		return fmt.Errorf("save embedding provider: %w", err)
	}
	if err := s.configStore.Set(keyEmbedModel, settings.Embedding.Model); err != nil {
		return fmt.Errorf("save embedding model: %w", err)
	}
	if err := s.configStore.Set(keyEmbedBaseURL, settings.Embedding.BaseURL); err != nil {
		return fmt.Errorf("save embedding base_url: %w", err)
	}
	if settings.Embedding.APIKey != "" {
		if err := s.configStore.Set(keyEmbedAPIKey, settings.Embedding.APIKey); err != nil {
			return fmt.Errorf("save embedding api_key: %w", err)
		}
	}

	if err := s.configStore.Set(keyVectorBackend, settings.Vector.Backend.String()); err != nil {
		return fmt.Errorf("save vector backend: %w", err)
	}
	if err := s.configStore.Set(keyRedisAddr, settings.Vector.RedisAddr); err != nil {
		return fmt.Errorf("save redis addr: %w", err)
	}
	if settings.Vector.RedisPassword != "" {
		if err := s.configStore.Set(keyRedisPassword, settings.Vector.RedisPassword); err != nil {
			return fmt.Errorf("save redis password: %w", err)
		}
	}

	if settings.Storage.DataDir != "" {
		if err := s.configStore.Set(keyStorageDir, settings.Storage.DataDir); err != nil {
			return fmt.Errorf("save storage dir: %w", err)
		}
	}

	return nil
}

// SetEmbeddingProvider configures the embedding provider.
// The change takes effect on the next process start; a running process keeps
// the provider it was wired with.
func (s *SettingsService) SetEmbeddingProvider(provider domain.EmbeddingProvider, model, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("invalid embedding provider: %s", provider)
	}
	if provider.RequiresAPIKey() && apiKey == "" {
		return fmt.Errorf("API key required for %s", provider)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Embedding.Provider = provider

	// Set model - use provided or default
	if model != "" {
		settings.Embedding.Model = model
	} else if defaultModel, ok := domain.DefaultEmbeddingModels()[provider]; ok {
		settings.Embedding.Model = defaultModel
	}

	if apiKey != "" {
		settings.Embedding.APIKey = apiKey
	}

	return s.Save(settings)
}

// SetVectorBackend configures the vector store backend.
func (s *SettingsService) SetVectorBackend(backend domain.VectorBackend, redisAddr string) error {
	if !backend.IsValid() {
		return fmt.Errorf("invalid vector backend: %s", backend)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Vector.Backend = backend
	if redisAddr != "" {
		settings.Vector.RedisAddr = redisAddr
	}

	return s.Save(settings)
}

// Validate checks if current settings are internally consistent.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !settings.Embedding.Provider.IsValid() {
		return fmt.Errorf("invalid embedding provider: %s", settings.Embedding.Provider)
	}
	if !settings.Embedding.IsConfigured() {
		return fmt.Errorf("embedding provider %s is not fully configured", settings.Embedding.Provider)
	}
	if !settings.Vector.Backend.IsValid() {
		return fmt.Errorf("invalid vector backend: %s", settings.Vector.Backend)
	}
	if settings.Vector.Backend == domain.VectorBackendRedis && settings.Vector.RedisAddr == "" {
		return fmt.Errorf("redis backend requires an address")
	}

	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// getString returns a config value or the default if unset.
func (s *SettingsService) getString(key, defaultValue string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return defaultValue
}

// getProvider returns the configured embedding provider or the default.
func (s *SettingsService) getProvider(defaultValue domain.EmbeddingProvider) domain.EmbeddingProvider {
	v := s.configStore.GetString(keyEmbedProvider)
	if v == "" {
		return defaultValue
	}
	provider := domain.EmbeddingProvider(v)
	if !provider.IsValid() {
		return defaultValue
	}
	return provider
}

// getBackend returns the configured vector backend or the default.
func (s *SettingsService) getBackend(defaultValue domain.VectorBackend) domain.VectorBackend {
	v := s.configStore.GetString(keyVectorBackend)
	if v == "" {
		return defaultValue
	}
	backend := domain.VectorBackend(v)
	if !backend.IsValid() {
		return defaultValue
	}
	return backend
}
