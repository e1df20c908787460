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
//   - ConfigStore: Application configuration (YAML file plus environment overlay)
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ProbeFactory: Builds BackendProbes for Ollama, Qdrant and Neo4j.
//     Without it, status reports list no backends.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
