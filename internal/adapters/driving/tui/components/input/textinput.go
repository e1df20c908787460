// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
)

// charLimit caps the length of a domain name.
const charLimit = 128

// DomainInput wraps a bubbles textinput for entering a Wikipedia domain.
type DomainInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewDomainInput creates a new domain input component.
// The placeholder shows the default domain, which an empty value keeps.
func NewDomainInput(s *styles.Styles) *DomainInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = domain.DefaultDomain
	ti.Focus()
	ti.CharLimit = charLimit
	ti.Width = 40

	return &DomainInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init initialises the input.
func (d *DomainInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (d *DomainInput) Update(msg tea.Msg) (*DomainInput, tea.Cmd) {
	var cmd tea.Cmd
	d.textinput, cmd = d.textinput.Update(msg)
	return d, cmd
}

// View renders the input.
func (d *DomainInput) View() string {
	label := d.styles.Title.Render("Domain: ")
	field := d.styles.InputField.Render(d.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (d *DomainInput) Value() string {
	return d.textinput.Value()
}

// SetValue sets the input value.
func (d *DomainInput) SetValue(value string) {
	d.textinput.SetValue(value)
	d.textinput.CursorEnd()
}

// Focus sets focus on the input.
func (d *DomainInput) Focus() tea.Cmd {
	return d.textinput.Focus()
}

// Blur removes focus from the input.
func (d *DomainInput) Blur() {
	d.textinput.Blur()
}

// Focused returns whether the input is focused.
func (d *DomainInput) Focused() bool {
	return d.textinput.Focused()
}

// SetWidth sets the width of the input.
func (d *DomainInput) SetWidth(width int) {
	d.width = width
	// Account for label and padding
	inputWidth := width - 12
	if inputWidth < 20 {
		inputWidth = 20
	}
	d.textinput.Width = inputWidth
}

// Width returns the current width.
func (d *DomainInput) Width() int {
	return d.width
}

// Reset clears the input.
func (d *DomainInput) Reset() {
	d.textinput.Reset()
}
