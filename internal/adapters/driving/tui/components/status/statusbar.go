// Package status provides the wizard's status bar and error toast.
package status

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/styles"
)

// ToastDuration is how long an error toast stays visible.
const ToastDuration = 5 * time.Second

// State represents the current wizard state for display.
type State string

const (
	StateReady      State = "ready"
	StateProcessing State = "processing"
	StateError      State = "error"
)

// Bar displays the wizard status, an error toast and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	spinner  spinner.Model
	state    State
	message  string
	toastSeq int
	form     bool
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = s.Title

	return &Bar{
		styles:  s,
		keymap:  km,
		spinner: sp,
		state:   StateReady,
		width:   80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update advances the spinner and expires toasts.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if s.state != StateProcessing {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	case messages.ToastExpired:
		// A newer toast replaces the old one; only its own timer clears it.
		if msg.Seq == s.toastSeq && s.state == StateError {
			s.Clear()
		}
	}
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateProcessing:
		label := s.message
		if label == "" {
			label = "Working..."
		}
		return s.spinner.View() + " " + s.styles.Normal.Render(label)
	case StateError:
		if s.message != "" {
			return s.styles.Toast.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Toast.Render("Error")
	}
	if s.message != "" {
		return s.styles.Muted.Render(s.message)
	}
	return s.styles.Muted.Render("Ready")
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.form {
		bindings = s.keymap.FormHelp()
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// StartProcessing shows the spinner with label and returns its tick command.
func (s *Bar) StartProcessing(label string) tea.Cmd {
	s.state = StateProcessing
	s.message = label
	return s.spinner.Tick
}

// ShowToast shows an error notice and returns the command that hides it.
func (s *Bar) ShowToast(text string) tea.Cmd {
	s.toastSeq++
	seq := s.toastSeq
	s.state = StateError
	s.message = text
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return messages.ToastExpired{Seq: seq}
	})
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetFormHints switches the hints between form and step keybindings.
func (s *Bar) SetFormHints(form bool) {
	s.form = form
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
