// Package domain defines the core business entities for semtask.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - User: An owner of a task catalogue and a vector space
//   - Task: A unit of work with a free-text description
//   - TaskMatch: The outcome of a semantic query
//   - AppSettings: Typed application configuration
//
// It also holds the similarity math used by the query engine, since cosine
// similarity is a pure business rule with no infrastructure concerns.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
