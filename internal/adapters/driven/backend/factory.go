package backend

import (
	"time"

	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driven/backend/neo4j"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driven/backend/ollama"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driven/backend/qdrant"
	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
	"github.com/custodia-labs/wikiqa-cli/internal/core/ports/driven"
)

// Ensure Factory implements the interface.
var _ driven.ProbeFactory = (*Factory)(nil)

// Factory creates one probe per known backend.
type Factory struct {
	// Timeout is passed to HTTP probes. Zero uses each probe's default.
	Timeout time.Duration
}

// NewFactory creates a probe factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Probes returns probes in domain.AllBackends order.
func (f *Factory) Probes(settings *domain.Settings) ([]driven.BackendProbe, error) {
	if settings == nil {
		return nil, domain.ErrInvalidSetting
	}

	probes := make([]driven.BackendProbe, 0, len(domain.AllBackends()))
	for _, kind := range domain.AllBackends() {
		switch kind {
		case domain.BackendOllama:
			probes = append(probes, ollama.NewProbe(ollama.Config{
				BaseURL: settings.Ollama.BaseURL,
				Models:  []string{settings.Ollama.EmbeddingModel, settings.Ollama.LLMModel},
				Timeout: f.Timeout,
			}))
		case domain.BackendQdrant:
			probes = append(probes, qdrant.NewProbe(settings.Qdrant.URL, f.Timeout))
		case domain.BackendNeo4j:
			probes = append(probes, neo4j.NewProbe(settings.Neo4j))
		}
	}
	return probes, nil
}
