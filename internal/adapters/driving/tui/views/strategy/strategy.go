// Package strategy provides the view for choosing the Q&A strategy.
package strategy

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
	"github.com/custodia-labs/wikiqa-cli/internal/core/ports/driving"
)

// View picks one of the Q&A strategies.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService
	strategies      []domain.QnAStrategy
	current         domain.QnAStrategy
	selected        int
	err             error
	width           int
	height          int
}

// NewView creates a new strategy view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	v := &View{
		styles:          s,
		settingsService: settingsService,
		strategies:      domain.AllQnAStrategies(),
	}
	v.Reset(domain.DefaultQnAStrategy)
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Reset moves the cursor to the current strategy.
func (v *View) Reset(current domain.QnAStrategy) {
	v.current = current
	v.err = nil
	v.selected = 0
	for i, s := range v.strategies {
		if s == current {
			v.selected = i
		}
	}
}

// Update handles messages for the strategy view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
		case "down", "j":
			if v.selected < len(v.strategies)-1 {
				v.selected++
			}
		case "enter":
			return v, v.save(v.strategies[v.selected])
		default:
			if len(key) == 1 && key[0] >= '1' && int(key[0]-'0') <= len(v.strategies) {
				v.selected = int(key[0] - '1')
				return v, v.save(v.strategies[v.selected])
			}
		}

	case messages.SettingsSaved:
		v.err = msg.Err
	}
	return v, nil
}

func (v *View) save(strategy domain.QnAStrategy) tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: fmt.Errorf("settings service not available")}
		}
		if err := v.settingsService.SetStrategy(strategy); err != nil {
			return messages.SettingsSaved{Err: err}
		}
		notice := "Q&A strategy set to: " + strategy.String()
		if v.settingsService.Overridden(domain.KeyQnAStrategy) {
			notice += messages.OverriddenSuffix
		}
		settings, _ := v.settingsService.Get()
		return messages.SettingsSaved{Notice: notice, Settings: settings}
	}
}

// View renders the strategy list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Change Q&A Strategy"))
	b.WriteString("\n\n")

	for i, s := range v.strategies {
		line := fmt.Sprintf("[%d] %-6s  %s", i+1, s, s.Description())
		if s == v.current {
			line += " (current)"
		}
		if i == v.selected {
			b.WriteString("> " + v.styles.Selected.Render(line))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[1-3] Choose  [j/k] Navigate  [Enter] Select  [Esc] Back"))
	return b.String()
}

// Selected returns the highlighted strategy.
func (v *View) Selected() domain.QnAStrategy {
	return v.strategies[v.selected]
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
