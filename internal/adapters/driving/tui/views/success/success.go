// Package success provides the confirmation shown after submission.
package success

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/styles"
)

// View confirms the submission and shows its reference.
type View struct {
	styles    *styles.Styles
	reference string
	width     int
	height    int
	ready     bool
}

// NewView creates a new success view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, width: 80, height: 24}
}

// SetReference sets the application reference. Empty when history is unavailable.
func (v *View) SetReference(ref string) {
	v.reference = ref
}

// Reference returns the application reference.
func (v *View) Reference() string {
	return v.reference
}

// Init initialises the success view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the success view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "enter", "esc":
			return v, tea.Quit
		}
	}
	return v, nil
}

// View renders the confirmation.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Success.Render("✓ Application Submitted Successfully!"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Normal.Render(
		"Thank you for applying! We've received your application and will review it carefully.\n" +
			"You should hear back from us within 5-7 business days."))
	b.WriteString("\n\n")

	if v.reference != "" {
		b.WriteString(v.styles.Muted.Render("Application Reference"))
		b.WriteString("\n")
		b.WriteString(v.styles.Title.Render(v.reference))
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Help.Render("[Enter/q] Exit"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}
