package session

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
)

func TestView_ShowsPlaceholder(t *testing.T) {
	view := NewView(nil)

	output := view.View()

	assert.Contains(t, output, "Q&A session not yet implemented.")
	assert.Contains(t, output, "Run the ingestion pipeline first.")
}

func TestView_ShowsSettings(t *testing.T) {
	view := NewView(nil)
	settings := domain.DefaultSettings()
	settings.Domain = "Astronomy"
	view.SetSettings(&settings)

	assert.Contains(t, view.View(), "Domain: Astronomy  Strategy: hybrid")
}

func TestView_KeysReturnToMenu(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyEnter},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		view := NewView(nil)

		_, cmd := view.Update(msg)

		require.NotNil(t, cmd, msg.String())
		assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
	}
}

func TestView_OtherKeysIgnored(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	assert.Nil(t, cmd)
	assert.Nil(t, view.Init())
}
