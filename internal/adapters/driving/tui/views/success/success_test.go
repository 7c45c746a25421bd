package success

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewView(t *testing.T) {
	view := NewView(nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.Nil(t, view.Init())
	assert.Equal(t, "Initialising...", view.View())
}

func TestView_View_WithReference(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(100, 40)
	view.SetReference("APP-2026-AB12CD34")

	output := view.View()

	assert.Equal(t, "APP-2026-AB12CD34", view.Reference())
	assert.Contains(t, output, "Application Submitted Successfully!")
	assert.Contains(t, output, "Application Reference")
	assert.Contains(t, output, "APP-2026-AB12CD34")
}

func TestView_View_WithoutReference(t *testing.T) {
	view := NewView(nil)
	view.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.NotContains(t, view.View(), "Application Reference")
}

func TestView_Update_ExitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		view := NewView(nil)
		_, cmd := view.Update(msg)
		require.NotNil(t, cmd, msg.String())
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestView_Update_OtherKeys(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	assert.Nil(t, cmd)
}
