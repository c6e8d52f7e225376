// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - TaskStore: Task persistence (the system of record)
//   - UserStore: User persistence
//   - VectorStore: Per-user embedding persistence
//   - EmbeddingService: Generates vector embeddings
//   - ConfigStore: Application configuration
//
// The embedding provider and vector backend are chosen once at startup from
// settings; services receive the constructed adapters and never build their
// own.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
