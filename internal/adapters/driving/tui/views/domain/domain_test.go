package domain

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driven/config/env"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/messages"
	core "github.com/custodia-labs/wikiqa-cli/internal/core/domain"
	"github.com/custodia-labs/wikiqa-cli/internal/core/services"
)

func newTestView(t *testing.T) (*View, *memory.ConfigStore) {
	t.Helper()
	store := memory.NewConfigStore()
	view := NewView(nil, services.NewSettingsService(store))
	view.Init()
	return view, store
}

func typeText(v *View, text string) {
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestView_SaveDomain(t *testing.T) {
	view, store := newTestView(t)
	typeText(view, "Physics")

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	saved, ok := cmd().(messages.SettingsSaved)
	require.True(t, ok)
	assert.Equal(t, "Domain set to: Physics", saved.Notice)
	assert.NoError(t, saved.Err)
	require.NotNil(t, saved.Settings)
	assert.Equal(t, "Physics", saved.Settings.Domain)
	assert.Equal(t, "Physics", store.GetString(core.KeyDomain))
}

func TestView_SaveEmptyUsesDefault(t *testing.T) {
	view, store := newTestView(t)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	saved, ok := cmd().(messages.SettingsSaved)
	require.True(t, ok)
	assert.Equal(t, "Domain set to: Computer Science", saved.Notice)
	assert.Equal(t, core.DefaultDomain, store.GetString(core.KeyDomain))
}

func TestView_EnterWhileSavingIgnored(t *testing.T) {
	view, _ := newTestView(t)

	_, first := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, second := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.NotNil(t, first)
	assert.Nil(t, second)

	view.Update(messages.SettingsSaved{})
	_, third := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, third)
}

func TestView_SaveWithoutService(t *testing.T) {
	view := NewView(nil, nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	saved, ok := cmd().(messages.SettingsSaved)
	require.True(t, ok)
	assert.Error(t, saved.Err)
}

func TestView_SaveErrorShown(t *testing.T) {
	view, _ := newTestView(t)

	view.Update(messages.SettingsSaved{Err: assert.AnError})

	assert.Contains(t, view.View(), "Error: "+assert.AnError.Error())
}

func TestView_EscReturnsToMenu(t *testing.T) {
	view, _ := newTestView(t)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_Reset(t *testing.T) {
	view, _ := newTestView(t)
	typeText(view, "Phys")
	view.Update(messages.SettingsSaved{Err: assert.AnError})

	view.Reset("History")

	assert.Equal(t, "", view.input.Value())
	assert.Nil(t, view.err)
	assert.Contains(t, view.View(), "Current domain: History")

	view.Reset("")
	assert.Equal(t, "History", view.current)
}

func TestView_Render(t *testing.T) {
	view, _ := newTestView(t)

	output := view.View()

	assert.Contains(t, output, "Configure Domain")
	assert.Contains(t, output, "Current domain: Computer Science")
	assert.Contains(t, output, "Leave empty to use Computer Science.")
}

func TestView_SaveNoticeMentionsEnvironmentOverride(t *testing.T) {
	t.Setenv("WIKIQA_DOMAIN", "History")
	store := memory.NewConfigStore()
	view := NewView(nil, services.NewSettingsService(env.NewOverlay(store)))
	view.Init()
	typeText(view, "Physics")

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	saved, ok := cmd().(messages.SettingsSaved)
	require.True(t, ok)
	assert.Equal(t, "Domain set to: Physics (overridden by the environment)", saved.Notice)
	require.NotNil(t, saved.Settings)
	assert.Equal(t, "History", saved.Settings.Domain)
}
