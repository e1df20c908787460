// Package help provides the help view for the TUI.
package help

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
)

var commands = [][2]string{
	{"wikiqa", "Open this menu (prints a summary when not in a terminal)"},
	{"wikiqa settings show", "Show the effective settings"},
	{"wikiqa settings domain <name>", "Set the Wikipedia domain"},
	{"wikiqa settings strategy <name>", "Set the Q&A strategy"},
	{"wikiqa status", "Check Ollama, Qdrant and Neo4j"},
	{"wikiqa mcp serve", "Expose settings and status over MCP"},
}

// View explains what the tool does.
type View struct {
	styles *styles.Styles
	width  int
	height int
}

// NewView creates a new help view.
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

// View renders the help text.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Normal.Render(
		"Wiki-QA answers questions from Wikipedia articles in a chosen domain."))
	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render(
		"Articles are embedded with Ollama and stored in Qdrant and Neo4j."))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Subtitle.Render("Strategies"))
	b.WriteString("\n")
	for _, s := range domain.AllQnAStrategies() {
		b.WriteString(fmt.Sprintf("  %-8s %s\n", s, s.Description()))
	}
	b.WriteString("\n")

	b.WriteString(v.styles.Subtitle.Render("Commands"))
	b.WriteString("\n")
	for _, c := range commands {
		b.WriteString(fmt.Sprintf("  %-33s %s\n", c[0], c[1]))
	}
	b.WriteString("\n")

	b.WriteString(v.styles.Muted.Render(
		"Settings are read from config/settings.yaml. WIKIQA_* environment variables take precedence."))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[Esc] Back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
