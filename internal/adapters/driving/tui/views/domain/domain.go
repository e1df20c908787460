// Package domain provides the view for changing the Wikipedia domain.
package domain

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/styles"
	core "github.com/custodia-labs/wikiqa-cli/internal/core/domain"
	"github.com/custodia-labs/wikiqa-cli/internal/core/ports/driving"
)

// View edits the Wikipedia domain.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService
	input           *input.DomainInput
	current         string
	err             error
	saving          bool
	width           int
	height          int
}

// NewView creates a new domain view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:          s,
		settingsService: settingsService,
		input:           input.NewDomainInput(s),
		current:         core.DefaultDomain,
	}
}

// Init focuses the input.
func (v *View) Init() tea.Cmd {
	return v.input.Focus()
}

// Reset clears the input and records the current domain.
func (v *View) Reset(current string) {
	if current != "" {
		v.current = current
	}
	v.input.Reset()
	v.err = nil
	v.saving = false
}

// Update handles messages for the domain view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case tea.KeyEnter:
			if v.saving {
				return v, nil
			}
			v.saving = true
			return v, v.save(v.input.Value())
		}

	case messages.SettingsSaved:
		v.saving = false
		v.err = msg.Err
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// save returns a command that persists the domain.
// An empty name keeps the default domain.
func (v *View) save(name string) tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: fmt.Errorf("settings service not available")}
		}
		name = strings.TrimSpace(name)
		if err := v.settingsService.SetDomain(name); err != nil {
			return messages.SettingsSaved{Err: err}
		}
		if name == "" {
			name = core.DefaultDomain
		}
		notice := "Domain set to: " + name
		if v.settingsService.Overridden(core.KeyDomain) {
			notice += messages.OverriddenSuffix
		}
		settings, _ := v.settingsService.Get()
		return messages.SettingsSaved{Notice: notice, Settings: settings}
	}
}

// View renders the domain form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Configure Domain"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Normal.Render("Current domain: " + v.current))
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Leave empty to use %s.", core.DefaultDomain)))
	b.WriteString("\n")

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[Enter] Save  [Esc] Back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
}
