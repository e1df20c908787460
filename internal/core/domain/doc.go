// Package domain defines the core business entities for Wiki-QA.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Settings: The merged application configuration
//   - QnAStrategy: How questions are answered (vector, graph, hybrid)
//   - BackendStatus: Reachability of Ollama, Qdrant and Neo4j
//   - StatusReport: Settings plus backend health
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
