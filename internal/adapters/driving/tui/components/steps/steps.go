// Package steps renders the wizard's step indicator.
package steps

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/apply-cli/internal/core/domain"
)

// Indicator renders numbered steps with a completed, active or pending marker.
type Indicator struct {
	styles *styles.Styles
	width  int
}

// New creates a step indicator.
func New(s *styles.Styles) *Indicator {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Indicator{styles: s, width: 80}
}

// SetWidth sets the available width.
func (i *Indicator) SetWidth(width int) {
	i.width = width
}

// View renders entries. The first entry that is not completed is the active one.
func (i *Indicator) View(entries []domain.StepStatus) string {
	parts := make([]string, 0, len(entries))
	activeFound := false
	for _, e := range entries {
		switch {
		case e.Completed:
			parts = append(parts, i.styles.StepDone.Render(fmt.Sprintf("✓ %s", e.Title)))
		case !activeFound:
			activeFound = true
			parts = append(parts, i.styles.StepActive.Render(fmt.Sprintf("%d %s", e.Number, e.Title)))
		default:
			parts = append(parts, i.styles.StepPending.Render(fmt.Sprintf("%d %s", e.Number, e.Title)))
		}
	}

	sep := i.styles.Muted.Render(" ── ")
	line := strings.Join(parts, sep)
	if lipgloss.Width(line) > i.width {
		// Too narrow for the separators: stack the steps.
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return line
}
