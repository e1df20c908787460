package driving

import (
	"context"

	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
)

// StatusService reports settings and backend health.
type StatusService interface {
	// Check probes the configured backends.
	// When refresh is false a recent report may be returned instead.
	Check(ctx context.Context, refresh bool) (*domain.StatusReport, error)

	// Summary returns a report with settings only, without probing.
	Summary() (*domain.StatusReport, error)
}
