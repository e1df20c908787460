package driven

import (
	"context"

	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
)

// BackendProbe checks whether one external backend is reachable.
type BackendProbe interface {
	// Kind identifies the backend being probed.
	Kind() domain.BackendKind

	// Endpoint returns the address the probe connects to.
	Endpoint() string

	// Probe contacts the backend. A nil error means it is usable.
	// The returned detail is a short human-readable summary (e.g. "3 collections").
	Probe(ctx context.Context) (detail string, err error)

	// Close releases resources held by the probe.
	Close() error
}

// ProbeFactory builds probes for the backends named in the settings.
type ProbeFactory interface {
	// Probes returns one probe per backend.
	Probes(settings *domain.Settings) ([]BackendProbe, error)
}
