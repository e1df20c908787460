package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/styles"
	domainview "github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/views/domain"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/views/help"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/views/session"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/views/status"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/views/strategy"
	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
)

// reloadedNotice is shown on the menu after the settings file changes on disk.
const reloadedNotice = "Settings reloaded"

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	menuView     *menu.View
	sessionView  *session.View
	domainView   *domainview.View
	strategyView *strategy.View
	statusView   *status.View
	helpView     *help.View

	// settings is the last successfully loaded settings.
	settings *domain.Settings

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool

	// quitting is set once the user has asked to exit.
	quitting bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports, version string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		menuView:     menu.NewView(s, version),
		sessionView:  session.NewView(s),
		domainView:   domainview.NewView(s, ports.Settings),
		strategyView: strategy.NewView(s, ports.Settings),
		statusView:   status.NewView(s, ports.Status),
		helpView:     help.NewView(s),
		currentView:  messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.statusView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It loads settings and starts listening for settings file changes.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("Wiki-QA"),
		a.loadSettings(),
		a.waitForChange(),
	)
}

// loadSettings returns a command that reads the merged settings.
func (a *App) loadSettings() tea.Cmd {
	svc := a.ports.Settings
	return func() tea.Msg {
		settings, err := svc.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// reloadSettings re-reads the settings file before loading.
func (a *App) reloadSettings() tea.Cmd {
	svc := a.ports.Settings
	return func() tea.Msg {
		if err := svc.Reload(); err != nil {
			return messages.SettingsReloaded{Err: err}
		}
		settings, err := svc.Get()
		return messages.SettingsReloaded{Settings: settings, Err: err}
	}
}

// waitForChange blocks until the settings file changes.
// It returns nil when there is nothing to watch or the channel closes.
func (a *App) waitForChange() tea.Cmd {
	changes := a.ports.Changes
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return messages.SettingsFileChanged{}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, a.quit()
		}
		return a, a.updateCurrent(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		a.err = nil
		switch msg.View {
		case messages.ViewDomain:
			a.domainView.Reset(a.currentDomain())
			return a, a.domainView.Init()
		case messages.ViewStrategy:
			a.strategyView.Reset(a.currentStrategy())
			return a, a.strategyView.Init()
		case messages.ViewStatus:
			a.statusView.SetSettings(a.settings)
			return a, a.statusView.Init()
		case messages.ViewMenu, messages.ViewSession, messages.ViewHelp:
			// No initialisation needed
		}
		return a, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.menuView.SetError(msg.Err)
			return a, nil
		}
		a.setSettings(msg.Settings)
		return a, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			a.err = msg.Err
			return a, a.updateCurrent(msg)
		}
		a.currentView = messages.ViewMenu
		a.menuView.SetNotice(msg.Notice)
		if msg.Settings != nil {
			a.setSettings(msg.Settings)
			return a, nil
		}
		return a, a.loadSettings()

	case messages.SettingsFileChanged:
		return a, tea.Batch(a.reloadSettings(), a.waitForChange())

	case messages.SettingsReloaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.menuView.SetError(msg.Err)
			return a, nil
		}
		// Our own saves also fire the watcher
		if a.settings != nil && msg.Settings != nil && *a.settings == *msg.Settings {
			return a, nil
		}
		a.setSettings(msg.Settings)
		a.menuView.SetNotice(reloadedNotice)
		return a, nil

	case messages.Notice:
		a.menuView.SetNotice(msg.Text)
		return a, nil

	case messages.StatusChecked:
		// Checks may finish after the user has left the view
		a.statusView, cmd = a.statusView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.menuView.SetError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, a.quit()
	}

	return a, a.updateCurrent(msg)
}

// updateCurrent forwards msg to the active view.
func (a *App) updateCurrent(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSession:
		a.sessionView, cmd = a.sessionView.Update(msg)
	case messages.ViewDomain:
		a.domainView, cmd = a.domainView.Update(msg)
	case messages.ViewStrategy:
		a.strategyView, cmd = a.strategyView.Update(msg)
	case messages.ViewStatus:
		a.statusView, cmd = a.statusView.Update(msg)
	case messages.ViewHelp:
		a.helpView, cmd = a.helpView.Update(msg)
	}
	return cmd
}

func (a *App) quit() tea.Cmd {
	a.quitting = true
	return tea.Quit
}

func (a *App) setSettings(settings *domain.Settings) {
	a.settings = settings
	a.err = nil
	a.menuView.SetSettings(settings)
	a.sessionView.SetSettings(settings)
	a.statusView.SetSettings(settings)
}

func (a *App) currentDomain() string {
	if a.settings == nil {
		return domain.DefaultDomain
	}
	return a.settings.Domain
}

func (a *App) currentStrategy() domain.QnAStrategy {
	if a.settings == nil {
		return domain.DefaultQnAStrategy
	}
	return a.settings.Strategy
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if a.quitting {
		return "Goodbye!\n"
	}
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSession:
		return a.sessionView.View()
	case messages.ViewDomain:
		return a.domainView.View()
	case messages.ViewStrategy:
		return a.strategyView.View()
	case messages.ViewStatus:
		return a.statusView.View()
	case messages.ViewHelp:
		return a.helpView.View()
	default:
		return a.menuView.View()
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Settings returns the last loaded settings.
func (a *App) Settings() *domain.Settings {
	return a.settings
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// Quitting returns whether the app is exiting.
func (a *App) Quitting() bool {
	return a.quitting
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.sessionView.SetDimensions(width, height)
	a.domainView.SetDimensions(width, height)
	a.strategyView.SetDimensions(width, height)
	a.statusView.SetDimensions(width, height)
	a.helpView.SetDimensions(width, height)
}
