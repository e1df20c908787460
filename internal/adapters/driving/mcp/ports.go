package mcp

import (
	"github.com/custodia-labs/wikiqa-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Settings reads and updates application settings.
	Settings driving.SettingsService

	// Status checks backend availability.
	Status driving.StatusService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Settings == nil {
		return ErrMissingSettingsService
	}
	// Status is optional, check_backends reports it as unavailable
	return nil
}
