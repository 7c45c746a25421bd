// Package styles provides colour themes and styling for the wizard.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the wizard palette. Every colour adapts to light and dark
// terminal backgrounds.
type Theme struct {
	// Primary marks the active step, titles and the focused button.
	Primary lipgloss.AdaptiveColor
	// Secondary marks the focused field label.
	Secondary lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Subtle    lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Notice    lipgloss.AdaptiveColor
	Danger    lipgloss.AdaptiveColor
	// Outline is the border of an unfocused input.
	Outline lipgloss.AdaptiveColor
	// Bar is the status bar background.
	Bar lipgloss.AdaptiveColor
}

// DefaultTheme returns the blue and teal palette of the Respublica forms.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"},
		Secondary: lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#2DD4BF"},
		Text:      lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E5E7EB"},
		Subtle:    lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
		Success:   lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"},
		Notice:    lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"},
		Danger:    lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"},
		Outline:   lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"},
		Bar:       lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#1F2937"},
	}
}

// Styles holds the lipgloss styles the views render with.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style

	// Selected highlights the menu item or checklist row under the cursor.
	Selected lipgloss.Style

	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	// InputField boxes a text control; InputFocused and InputInvalid
	// replace it while the control has focus or an error.
	InputField   lipgloss.Style
	InputFocused lipgloss.Style
	InputInvalid lipgloss.Style
	FocusedLabel lipgloss.Style

	StatusBar lipgloss.Style
	Toast     lipgloss.Style

	StepDone    lipgloss.Style
	StepActive  lipgloss.Style
	StepPending lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return &Styles{
		theme: theme,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(theme.Text),
		Normal:   lipgloss.NewStyle().Foreground(theme.Text),
		Muted:    lipgloss.NewStyle().Foreground(theme.Subtle),
		Help:     lipgloss.NewStyle().Foreground(theme.Subtle).Italic(true),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0B1120"}).
			Background(theme.Primary),

		Error:   lipgloss.NewStyle().Foreground(theme.Danger),
		Success: lipgloss.NewStyle().Bold(true).Foreground(theme.Success),
		Warning: lipgloss.NewStyle().Foreground(theme.Notice),

		InputField:   box.BorderForeground(theme.Outline),
		InputFocused: box.BorderForeground(theme.Primary),
		InputInvalid: box.BorderForeground(theme.Danger),
		FocusedLabel: lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Subtle).
			Background(theme.Bar).
			Padding(0, 1),

		Toast: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(theme.Danger).
			Padding(0, 1),

		StepDone:    lipgloss.NewStyle().Foreground(theme.Success),
		StepActive:  lipgloss.NewStyle().Bold(true).Underline(true).Foreground(theme.Primary),
		StepPending: lipgloss.NewStyle().Foreground(theme.Subtle),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
