// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
//   - SettingsService: merges defaults with the config store and validates
//   - StatusService: probes Ollama, Qdrant and Neo4j for the active strategy
package services
