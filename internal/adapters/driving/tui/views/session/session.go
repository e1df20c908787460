// Package session provides the Q&A session view for the TUI.
// Answering questions needs the ingestion pipeline, so the view only
// reports that the session is not available yet.
package session

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
)

// View is the Q&A session placeholder.
type View struct {
	styles   *styles.Styles
	settings *domain.Settings
	width    int
	height   int
}

// NewView creates a new session view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update returns to the menu on esc, enter or q.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "enter", "q":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
	}
	return v, nil
}

// View renders the placeholder.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Q&A Session"))
	b.WriteString("\n\n")
	if v.settings != nil {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Domain: %s  Strategy: %s",
			v.settings.Domain, v.settings.Strategy)))
		b.WriteString("\n\n")
	}
	b.WriteString(v.styles.Warning.Render(domain.ErrSessionUnavailable.Error() + "."))
	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render("Run the ingestion pipeline first."))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[Esc] Back"))
	return b.String()
}

// SetSettings sets the settings shown in the header.
func (v *View) SetSettings(settings *domain.Settings) {
	v.settings = settings
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
