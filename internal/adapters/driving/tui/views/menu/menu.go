// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
)

// Item represents a single menu option.
type Item struct {
	Label string
	View  messages.ViewType
	Quit  bool // If true, selecting this item quits the app
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	version  string
	items    []Item
	selected int
	domain   string
	notice   string
	err      error
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles, version string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:  s,
		version: version,
		items: []Item{
			{Label: "Start Q&A Session", View: messages.ViewSession},
			{Label: "Configure Domain", View: messages.ViewDomain},
			{Label: "Change Q&A Strategy", View: messages.ViewStrategy},
			{Label: "View Status", View: messages.ViewStatus},
			{Label: "Help", View: messages.ViewHelp},
			{Label: "Exit", Quit: true},
		},
		domain: domain.DefaultDomain,
		width:  80,
		height: 24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			return v, v.activate(v.selected)

		case "q":
			return v, quit

		default:
			// Digits jump straight to an item
			if len(key) == 1 && key[0] >= '1' && int(key[0]-'0') <= len(v.items) {
				v.selected = int(key[0] - '1')
				return v, v.activate(v.selected)
			}
		}
	}

	return v, nil
}

func (v *View) activate(idx int) tea.Cmd {
	item := v.items[idx]
	v.notice = ""
	if item.Quit {
		return quit
	}
	return func() tea.Msg {
		return messages.ViewChanged{View: item.View}
	}
}

func quit() tea.Msg {
	return messages.Quit{}
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Banner.Render(
		fmt.Sprintf("Wiki-QA CLI v%s\nIntelligent Document Q&A System", v.version)))
	b.WriteString("\n\n")

	for i, item := range v.items {
		label := item.Label
		if item.View == messages.ViewSession {
			label = fmt.Sprintf("%s (%s)", label, v.domain)
		}
		line := fmt.Sprintf("[%d] %s", i+1, label)

		if i == v.selected {
			b.WriteString("> " + v.styles.Selected.Render(line))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Settings error: %v", v.err)))
		b.WriteString("\n")
	} else if v.notice != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Success.Render(v.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[1-6] Choose  [j/k] Navigate  [Enter] Select  [q] Quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// SetSettings updates the domain shown next to the session item.
func (v *View) SetSettings(settings *domain.Settings) {
	if settings != nil {
		v.domain = settings.Domain
	}
	v.err = nil
}

// SetError shows a settings error beneath the items.
func (v *View) SetError(err error) {
	v.err = err
}

// SetNotice sets the one-line notice beneath the items.
func (v *View) SetNotice(notice string) {
	v.notice = notice
}

// Notice returns the current notice.
func (v *View) Notice() string {
	return v.notice
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}
