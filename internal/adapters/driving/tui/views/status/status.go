// Package status provides the settings and backend status view for the TUI.
package status

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	statusbar "github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
	"github.com/custodia-labs/wikiqa-cli/internal/core/ports/driving"
)

// View shows the effective settings and backend checks.
type View struct {
	styles        *styles.Styles
	keymap        *keymap.KeyMap
	statusService driving.StatusService
	ctx           context.Context
	bar           *statusbar.Bar

	settings *domain.Settings
	report   *domain.StatusReport
	checking bool
	width    int
	height   int
}

// NewView creates a new status view. statusService may be nil, in which
// case only settings are shown.
func NewView(s *styles.Styles, statusService driving.StatusService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()
	return &View{
		styles:        s,
		keymap:        km,
		statusService: statusService,
		ctx:           context.Background(),
		bar:           statusbar.NewBar(s, km),
	}
}

// WithContext sets the context used for backend checks.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts a backend check, reusing a recent result when available.
func (v *View) Init() tea.Cmd {
	return v.check(false)
}

func (v *View) check(refresh bool) tea.Cmd {
	if v.statusService == nil || v.checking {
		return nil
	}
	v.checking = true
	v.bar.SetState(statusbar.StateChecking)
	v.bar.SetMessage("")

	ctx := v.ctx
	return func() tea.Msg {
		report, err := v.statusService.Check(ctx, refresh)
		return messages.StatusChecked{Report: report, Err: err}
	}
}

// Update handles messages for the status view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case keymap.Matches(msg.String(), v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case keymap.Matches(msg.String(), v.keymap.Refresh):
			return v, v.check(true)
		}

	case messages.StatusChecked:
		v.checking = false
		if msg.Err != nil {
			v.bar.SetState(statusbar.StateError)
			v.bar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.setReport(msg.Report)
	}
	return v, nil
}

func (v *View) setReport(report *domain.StatusReport) {
	v.report = report
	if report == nil {
		v.bar.Clear()
		return
	}
	settings := report.Settings
	v.settings = &settings

	reachable := 0
	for _, b := range report.Backends {
		if b.Reachable {
			reachable++
		}
	}
	v.bar.SetCounts(reachable, len(report.Backends))
	v.bar.SetMessage("")
	if report.Ready() {
		v.bar.SetState(statusbar.StateReady)
	} else {
		v.bar.SetState(statusbar.StateNotReady)
	}
	if report.Cached {
		v.bar.SetMessage(fmt.Sprintf("checked at %s (press r to re-check)", report.CheckedAt.Format(time.Kitchen)))
	}
}

// View renders settings and backend status.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Status"))
	b.WriteString("\n\n")

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		b.WriteString("\n")
	} else {
		s := v.settings
		v.row(&b, "Domain", s.Domain)
		v.row(&b, "Q&A strategy", fmt.Sprintf("%s (%s)", s.Strategy, s.Strategy.Description()))
		v.row(&b, "Article limit", fmt.Sprint(s.ArticleLimit))
		v.row(&b, "Citations", s.CitationsLabel())
		v.row(&b, "Batch size", fmt.Sprint(s.BatchSize))
		v.row(&b, "Concurrent requests", fmt.Sprint(s.ConcurrentRequests))
		v.row(&b, "Cache embeddings", s.CacheEmbeddingsLabel())
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("Backends"))
	b.WriteString("\n")
	switch {
	case v.statusService == nil:
		b.WriteString(v.styles.Muted.Render("Backend checks unavailable."))
		b.WriteString("\n")
	case v.report == nil:
		b.WriteString(v.styles.Muted.Render("Checking..."))
		b.WriteString("\n")
	default:
		for _, bs := range v.report.Backends {
			b.WriteString(v.backendLine(bs))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.bar.View())
	return b.String()
}

func (v *View) row(b *strings.Builder, label, value string) {
	b.WriteString(v.styles.Label.Render(label+":") + v.styles.Normal.Render(value))
	b.WriteString("\n")
}

func (v *View) backendLine(bs domain.BackendStatus) string {
	mark := v.styles.Success.Render("✓")
	if !bs.Reachable {
		mark = v.styles.Error.Render("✗")
		if !bs.Required {
			mark = v.styles.Muted.Render("-")
		}
	}

	line := fmt.Sprintf("%s %s  %s", mark, bs.Backend.Description(), v.styles.Muted.Render(bs.Endpoint))
	switch {
	case bs.Error != "":
		line += "\n    " + v.styles.Error.Render(bs.Error)
	case bs.Detail != "":
		line += "\n    " + v.styles.Muted.Render(bs.Detail)
	}
	if !bs.Required {
		line += v.styles.Muted.Render("  (not used by this strategy)")
	}
	return line
}

// SetSettings shows settings before the first check completes.
func (v *View) SetSettings(settings *domain.Settings) {
	if settings != nil {
		v.settings = settings
	}
}

// Checking reports whether a check is in flight.
func (v *View) Checking() bool {
	return v.checking
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.bar.SetWidth(width)
}
