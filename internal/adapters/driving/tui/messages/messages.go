// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSession is the Q&A session.
	ViewSession
	// ViewDomain edits the Wikipedia domain.
	ViewDomain
	// ViewStrategy picks the Q&A strategy.
	ViewStrategy
	// ViewStatus shows settings and backend status.
	ViewStatus
	// ViewHelp is the help view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSession:
		return "session"
	case ViewDomain:
		return "domain"
	case ViewStrategy:
		return "strategy"
	case ViewStatus:
		return "status"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// Notice carries a one-line message for the menu.
type Notice struct {
	Text string
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.Settings
	Err      error
}

// OverriddenSuffix is appended to a save notice when the environment
// shadows the saved value.
const OverriddenSuffix = " (overridden by the environment)"

// SettingsSaved signals a setting was written.
// Notice describes the change for the menu. Settings holds the merged
// settings after the write, or nil if they could not be read back.
type SettingsSaved struct {
	Notice   string
	Settings *domain.Settings
	Err      error
}

// SettingsFileChanged signals the settings file changed on disk.
type SettingsFileChanged struct{}

// SettingsReloaded carries the settings re-read after a file change.
type SettingsReloaded struct {
	Settings *domain.Settings
	Err      error
}

// StatusChecked carries a backend status report.
type StatusChecked struct {
	Report *domain.StatusReport
	Err    error
}
