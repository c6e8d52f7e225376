// Command semtask is a per-user semantic task retrieval tool.
//
// Tasks and users live in a local SQLite database. Each user has a vector
// space of task embeddings, stored in SQLite or Redis, that free-text
// queries are matched against by cosine similarity.
package main

import (
	"fmt"
	"os"

	"github.com/semtask/semtask-cli/internal/adapters/driven/config/file"
	"github.com/semtask/semtask-cli/internal/adapters/driven/embedding/hash"
	"github.com/semtask/semtask-cli/internal/adapters/driven/embedding/openai"
	"github.com/semtask/semtask-cli/internal/adapters/driven/storage/redis"
	"github.com/semtask/semtask-cli/internal/adapters/driven/storage/sqlite"
	"github.com/semtask/semtask-cli/internal/adapters/driving/cli"
	"github.com/semtask/semtask-cli/internal/core/domain"
	"github.com/semtask/semtask-cli/internal/core/ports/driven"
	"github.com/semtask/semtask-cli/internal/core/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	store, err := sqlite.NewStore(settings.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()

	embedder, err := buildEmbedder(settings)
	if err != nil {
		return err
	}
	defer embedder.Close()

	vectorStore, err := buildVectorStore(settings, store)
	if err != nil {
		return err
	}
	defer vectorStore.Close()

	taskStore := store.TaskStore()
	userStore := store.UserStore()

	cli.SetVersion(version)
	cli.SetServices(cli.Deps{
		Index:    services.NewIndexer(taskStore, vectorStore, embedder),
		Query:    services.NewQuery(taskStore, vectorStore, embedder),
		Tasks:    services.NewTaskService(taskStore, userStore),
		Settings: settingsService,
	})

	cli.Execute()
	return nil
}

// buildEmbedder constructs the embedding service named by the settings.
func buildEmbedder(settings *domain.AppSettings) (driven.EmbeddingService, error) {
	switch settings.Embedding.Provider {
	case domain.EmbeddingProviderOpenAI:
		svc, err := openai.NewEmbeddingService(openai.Config{
			APIKey:  settings.Embedding.APIKey,
			BaseURL: settings.Embedding.BaseURL,
			Model:   settings.Embedding.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("configure openai embedder: %w", err)
		}
		return svc, nil
	case domain.EmbeddingProviderHash:
		return hash.NewEmbeddingService(), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s", settings.Embedding.Provider)
	}
}

// buildVectorStore constructs the vector backend named by the settings.
// The sqlite backend shares the metadata database.
func buildVectorStore(settings *domain.AppSettings, store *sqlite.Store) (driven.VectorStore, error) {
	switch settings.Vector.Backend {
	case domain.VectorBackendRedis:
		return redis.NewVectorStore(redis.Config{
			Addr:     settings.Vector.RedisAddr,
			Password: settings.Vector.RedisPassword,
		}), nil
	case domain.VectorBackendSQLite:
		return store.VectorStore(), nil
	default:
		return nil, fmt.Errorf("unknown vector backend: %s", settings.Vector.Backend)
	}
}
