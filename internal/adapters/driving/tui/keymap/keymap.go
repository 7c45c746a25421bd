// Package keymap defines keybindings for the wizard.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the wizard.
type KeyMap struct {
	// Quit exits the application. Views with text entry only honour ctrl+c.
	Quit key.Binding

	// Help toggles the full key help.
	Help key.Binding

	// Next completes the current step.
	Next key.Binding

	// NextField moves focus to the next field.
	NextField key.Binding

	// PrevField moves focus to the previous field.
	PrevField key.Binding

	// Toggle flips a checkbox.
	Toggle key.Binding

	// Submit completes a form step from any field.
	Submit key.Binding

	// ClearSession forgets the saved session.
	ClearSession key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "continue"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		ClearSession: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear saved session"),
		),
	}
}

// ShortHelp returns a short list of keybindings.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Quit, k.Help}
}

// FormHelp returns keybindings for steps with editable fields.
func (k *KeyMap) FormHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.Toggle, k.Submit}
}

// FullHelp returns the full list of keybindings.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.Toggle},
		{k.Next, k.Submit, k.ClearSession},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
