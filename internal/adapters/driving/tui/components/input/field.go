// Package input provides labelled form controls for the wizard.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/styles"
)

// Control is a focusable form control.
type Control interface {
	Label() string
	Value() string
	SetValue(value string)
	Focus() tea.Cmd
	Blur()
	Focused() bool
	SetError(msg string)
	SetWidth(width int)
	Update(msg tea.Msg) tea.Cmd
	View() string
}

var (
	_ Control = (*Field)(nil)
	_ Control = (*Area)(nil)
)

// Field is a single-line labelled text input.
type Field struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	required  bool
	err       string
	width     int
}

// NewField creates a single-line field.
func NewField(s *styles.Styles, label, placeholder string, required bool) *Field {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 50

	return &Field{
		textinput: ti,
		styles:    s,
		label:     label,
		required:  required,
		width:     50,
	}
}

// Update handles input messages.
func (f *Field) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return cmd
}

// View renders the label, the input and any error.
func (f *Field) View() string {
	return renderControl(f.styles, f.label, f.required, f.Focused(), f.err, f.textinput.View())
}

// Label returns the field label.
func (f *Field) Label() string {
	return f.label
}

// Value returns the current input value.
func (f *Field) Value() string {
	return f.textinput.Value()
}

// SetValue sets the input value.
func (f *Field) SetValue(value string) {
	f.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (f *Field) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes focus from the input.
func (f *Field) Blur() {
	f.textinput.Blur()
}

// Focused returns whether the input is focused.
func (f *Field) Focused() bool {
	return f.textinput.Focused()
}

// SetError sets the inline error. An empty message clears it.
func (f *Field) SetError(msg string) {
	f.err = msg
}

// Error returns the inline error.
func (f *Field) Error() string {
	return f.err
}

// SetWidth sets the width of the input.
func (f *Field) SetWidth(width int) {
	f.width = width
	inputWidth := width - 6
	if inputWidth < 20 {
		inputWidth = 20
	}
	f.textinput.Width = inputWidth
}

// Width returns the current width.
func (f *Field) Width() int {
	return f.width
}

// Reset clears the input and its error.
func (f *Field) Reset() {
	f.textinput.Reset()
	f.err = ""
}

// Area is a multi-line labelled input holding one list item per line.
type Area struct {
	textarea textarea.Model
	styles   *styles.Styles
	label    string
	err      string
}

// NewArea creates a multi-line field of the given height.
func NewArea(s *styles.Styles, label, placeholder string, height int) *Area {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 4000
	ta.SetHeight(height)
	ta.SetWidth(50)

	return &Area{
		textarea: ta,
		styles:   s,
		label:    label,
	}
}

// Update handles input messages.
func (a *Area) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	a.textarea, cmd = a.textarea.Update(msg)
	return cmd
}

// View renders the label, the text area and any error.
func (a *Area) View() string {
	return renderControl(a.styles, a.label, false, a.Focused(), a.err, a.textarea.View())
}

// Label returns the area label.
func (a *Area) Label() string {
	return a.label
}

// Value returns the raw text.
func (a *Area) Value() string {
	return a.textarea.Value()
}

// SetValue sets the raw text.
func (a *Area) SetValue(value string) {
	a.textarea.SetValue(value)
}

// Lines returns the non-blank lines, trimmed and without a leading "- " marker.
func (a *Area) Lines() []string {
	lines := []string{}
	for _, line := range strings.Split(a.textarea.Value(), "\n") {
		line = strings.TrimPrefix(strings.TrimSpace(line), "- ")
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// SetLines sets one item per line.
func (a *Area) SetLines(lines []string) {
	a.textarea.SetValue(strings.Join(lines, "\n"))
}

// Focus sets focus on the area.
func (a *Area) Focus() tea.Cmd {
	return a.textarea.Focus()
}

// Blur removes focus from the area.
func (a *Area) Blur() {
	a.textarea.Blur()
}

// Focused returns whether the area is focused.
func (a *Area) Focused() bool {
	return a.textarea.Focused()
}

// SetError sets the inline error.
func (a *Area) SetError(msg string) {
	a.err = msg
}

// SetWidth sets the width of the area.
func (a *Area) SetWidth(width int) {
	w := width - 6
	if w < 20 {
		w = 20
	}
	a.textarea.SetWidth(w)
}

func renderControl(s *styles.Styles, label string, required, focused bool, errMsg, body string) string {
	if required {
		label += " *"
	}
	labelStyle, boxStyle := s.Normal, s.InputField
	switch {
	case errMsg != "":
		boxStyle = s.InputInvalid
	case focused:
		boxStyle = s.InputFocused
	}
	if focused {
		labelStyle = s.FocusedLabel
	}

	parts := []string{labelStyle.Render(label), boxStyle.Render(body)}
	if errMsg != "" {
		parts = append(parts, s.Error.Render(errMsg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
