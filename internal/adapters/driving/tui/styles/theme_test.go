package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme_AdaptsToBackground(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	for name, c := range map[string]lipgloss.AdaptiveColor{
		"primary":   theme.Primary,
		"secondary": theme.Secondary,
		"text":      theme.Text,
		"subtle":    theme.Subtle,
		"success":   theme.Success,
		"notice":    theme.Notice,
		"danger":    theme.Danger,
		"outline":   theme.Outline,
		"bar":       theme.Bar,
	} {
		assert.NotEmpty(t, c.Light, name)
		assert.NotEmpty(t, c.Dark, name)
		assert.NotEqual(t, c.Light, c.Dark, name)
	}
}

func TestDefaultTheme_AccentsAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	seen := make(map[string]bool)
	for _, c := range []lipgloss.AdaptiveColor{theme.Primary, theme.Secondary, theme.Success, theme.Notice, theme.Danger} {
		assert.False(t, seen[c.Dark], "duplicate accent: %s", c.Dark)
		seen[c.Dark] = true
	}
}

func TestNewStyles_WithTheme(t *testing.T) {
	theme := DefaultTheme()

	styles := NewStyles(theme)

	require.NotNil(t, styles)
	assert.Same(t, theme, styles.Theme())
}

func TestNewStyles_NilTheme(t *testing.T) {
	styles := NewStyles(nil)

	require.NotNil(t, styles)
	assert.NotNil(t, styles.Theme())
}

func TestStyles_InputStatesDiffer(t *testing.T) {
	s := DefaultStyles()

	assert.Equal(t, s.Theme().Outline, s.InputField.GetBorderTopForeground())
	assert.Equal(t, s.Theme().Primary, s.InputFocused.GetBorderTopForeground())
	assert.Equal(t, s.Theme().Danger, s.InputInvalid.GetBorderTopForeground())
}

func TestStyles_RenderKeepsText(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.Toast.Render("Submission failed"), "Submission failed")
	assert.Contains(t, s.StepActive.Render("Upload Documents"), "Upload Documents")
	assert.Contains(t, s.InputFocused.Render("SMTJAN001"), "SMTJAN001")
}
