package domain

import "time"

// BackendKind identifies an external service the Q&A pipeline depends on.
type BackendKind string

// Known backends.
const (
	BackendOllama BackendKind = "ollama"
	BackendQdrant BackendKind = "qdrant"
	BackendNeo4j  BackendKind = "neo4j"
)

// String returns the string representation.
func (k BackendKind) String() string {
	return string(k)
}

// Description returns a human-readable name for the backend.
func (k BackendKind) Description() string {
	switch k {
	case BackendOllama:
		return "Ollama (embeddings + LLM)"
	case BackendQdrant:
		return "Qdrant (vector store)"
	case BackendNeo4j:
		return "Neo4j (knowledge graph)"
	default:
		return unknownDescription
	}
}

// AllBackends returns every backend in display order.
func AllBackends() []BackendKind {
	return []BackendKind{BackendOllama, BackendQdrant, BackendNeo4j}
}

// RequiredBy reports whether the strategy needs this backend.
// Ollama is needed by every strategy.
func (k BackendKind) RequiredBy(s QnAStrategy) bool {
	switch k {
	case BackendOllama:
		return true
	case BackendQdrant:
		return s.RequiresVectorStore()
	case BackendNeo4j:
		return s.RequiresGraphStore()
	default:
		return false
	}
}

// BackendStatus is the outcome of probing one backend.
type BackendStatus struct {
	Backend   BackendKind   `json:"backend"`
	Endpoint  string        `json:"endpoint"`
	Required  bool          `json:"required"`
	Reachable bool          `json:"reachable"`
	Detail    string        `json:"detail,omitempty"`
	Error     string        `json:"error,omitempty"`
	Latency   time.Duration `json:"latency_ns"`
}

// StatusReport summarises settings and backend health.
type StatusReport struct {
	Settings  Settings        `json:"settings"`
	Backends  []BackendStatus `json:"backends"`
	CheckedAt time.Time       `json:"checked_at"`

	// Cached is true when the report was served from a previous check.
	Cached bool `json:"cached"`
}

// Ready returns true when every required backend is reachable.
func (r *StatusReport) Ready() bool {
	for _, b := range r.Backends {
		if b.Required && !b.Reachable {
			return false
		}
	}
	return true
}

// Unreachable returns the required backends that failed their probe.
func (r *StatusReport) Unreachable() []BackendKind {
	var down []BackendKind
	for _, b := range r.Backends {
		if b.Required && !b.Reachable {
			down = append(down, b.Backend)
		}
	}
	return down
}
