package driving

import "github.com/custodia-labs/wikiqa-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the merged settings (defaults, file, environment).
	// Returns an error if a value cannot be converted or fails validation.
	Get() (*domain.Settings, error)

	// Save persists the top-level settings to the settings file.
	// Backend connection settings are never written.
	Save(settings *domain.Settings) error

	// SetDomain updates the Wikipedia domain.
	SetDomain(name string) error

	// SetStrategy updates the Q&A strategy.
	SetStrategy(strategy domain.QnAStrategy) error

	// Validate checks if the current settings are valid.
	Validate() error

	// Reload re-reads the settings file from disk.
	Reload() error

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings

	// Path returns the settings file path.
	Path() string

	// Overridden reports whether key is set by the environment, in which
	// case a saved value does not take effect.
	Overridden(key string) bool
}
