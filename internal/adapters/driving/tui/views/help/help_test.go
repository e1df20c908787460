package help

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui/messages"
)

func TestView_Render(t *testing.T) {
	view := NewView(nil)

	output := view.View()

	assert.Contains(t, output, "Help")
	assert.Contains(t, output, "vector   Use semantic similarity search only")
	assert.Contains(t, output, "hybrid   Combine both approaches (recommended)")
	assert.Contains(t, output, "wikiqa settings show")
	assert.Contains(t, output, "wikiqa status")
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

func TestView_OtherInputIgnored(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(100, 40)

	_, cmd := view.Update(tea.WindowSizeMsg{Width: 10, Height: 10})

	assert.Nil(t, cmd)
	assert.Nil(t, view.Init())
	assert.Equal(t, 100, view.width)
}
