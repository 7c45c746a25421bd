package summary

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/apply-cli/internal/core/domain"
)

func TestNewView(t *testing.T) {
	view := NewView(styles.DefaultStyles())

	require.NotNil(t, view)
	assert.Len(t, view.items, 2)
	assert.Equal(t, 0, view.Selected())
	assert.Equal(t, 80, view.width)
	assert.Equal(t, 24, view.height)
	assert.Nil(t, view.Init())
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil)

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.ready)
	assert.Equal(t, 100, view.width)
}

func TestView_Update_Navigate(t *testing.T) {
	view := NewView(nil)

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, view.Selected(), "cannot move past the last item")

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, view.Selected())
}

func TestView_Update_EnterStarts(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.AdvanceRequested)
	require.True(t, ok)
	assert.Equal(t, domain.StepSummary, msg.Payload.CompletesStep())
	assert.Empty(t, msg.Label)
}

func TestView_Update_EnterOnQuit(t *testing.T) {
	view := NewView(nil)
	view.selected = 1

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_Update_Q(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_ResumeNote_AddsStartOver(t *testing.T) {
	view := NewView(nil)

	view.SetResumeNote("Saved session found for Jane Doe (CV: resume.pdf)")

	require.Len(t, view.items, 3)
	assert.Equal(t, "Start Over", view.items[1].Label)

	view.selected = 1
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ClearRequested{}, cmd())
}

func TestView_ResumeNote_ClearedResetsSelection(t *testing.T) {
	view := NewView(nil)
	view.SetResumeNote("Saved session found")
	view.selected = 2

	view.SetResumeNote("")

	assert.Len(t, view.items, 2)
	assert.Equal(t, 0, view.Selected())
	assert.Equal(t, "", view.ResumeNote())
}

func TestView_Setup(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(100, 40)
	assert.Nil(t, view.Setup())
	assert.NotContains(t, view.View(), "Submitting to")

	view.SetSetup([]string{"Submitting to: https://relay.example.com/f/abc", "CV extraction: Stub (fixed sample record)"})

	output := view.View()
	assert.Contains(t, output, "Submitting to: https://relay.example.com/f/abc")
	assert.Contains(t, output, "CV extraction: Stub")
}

func TestView_View_NotReady(t *testing.T) {
	assert.Equal(t, "Initialising...", NewView(nil).View())
}

func TestView_View_Content(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(100, 40)
	view.SetResumeNote("Saved session found for Jane Doe")

	output := view.View()

	assert.Contains(t, output, "Application Summary")
	assert.Contains(t, output, "Your CV in PDF format")
	assert.Contains(t, output, "Your student number")
	assert.Contains(t, output, "Saved session found for Jane Doe")
	assert.Contains(t, output, "Start Application")
	assert.Contains(t, output, "[Enter] Select")
}
