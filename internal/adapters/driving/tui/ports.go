// Package tui provides the interactive terminal menu for wikiqa.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/wikiqa-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Settings reads and updates application settings.
	Settings driving.SettingsService

	// Status checks backend availability. Optional.
	Status driving.StatusService

	// Changes signals that the settings file changed on disk. Optional.
	Changes <-chan struct{}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}
