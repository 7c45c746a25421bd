// Package summary provides the first wizard step: what to prepare before applying.
package summary

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driving"
)

type action int

const (
	actionStart action = iota
	actionStartOver
	actionQuit
)

// Item represents a single option below the summary.
type Item struct {
	Label  string
	action action
}

// View represents the application summary step.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	resume   string
	setup    []string
	width    int
	height   int
	ready    bool
}

// NewView creates a new summary view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles: s,
		width:  80,
		height: 24,
	}
	v.buildItems()
	return v
}

func (v *View) buildItems() {
	v.items = []Item{{Label: "Start Application", action: actionStart}}
	if v.resume != "" {
		v.items = append(v.items, Item{Label: "Start Over", action: actionStartOver})
	}
	v.items = append(v.items, Item{Label: "Quit", action: actionQuit})
	if v.selected >= len(v.items) {
		v.selected = 0
	}
}

// SetResumeNote describes a restored session. Empty hides the note and the Start Over option.
func (v *View) SetResumeNote(note string) {
	v.resume = note
	v.buildItems()
}

// SetSetup sets the lines describing the current configuration. Nil hides them.
func (v *View) SetSetup(lines []string) {
	v.setup = lines
}

// Setup returns the configuration lines.
func (v *View) Setup() []string {
	return v.setup
}

// ResumeNote returns the restored-session note.
func (v *View) ResumeNote() string {
	return v.resume
}

// Init initialises the summary view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the summary view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			return v, v.activate(v.items[v.selected])

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

func (v *View) activate(item Item) tea.Cmd {
	switch item.action {
	case actionStartOver:
		return func() tea.Msg { return messages.ClearRequested{} }
	case actionQuit:
		return tea.Quit
	default:
		return func() tea.Msg {
			return messages.AdvanceRequested{Payload: driving.AcknowledgePayload{}}
		}
	}
}

// View renders the summary.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Application Summary"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Normal.Render("Please prepare the following information before starting your application:"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Normal.Render("  • Your CV in PDF format (combining CV and cover letter)"))
	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render("  • Your student number"))
	b.WriteString("\n\n")

	if len(v.setup) > 0 {
		for _, line := range v.setup {
			b.WriteString(v.styles.Muted.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if v.resume != "" {
		b.WriteString(v.styles.Warning.Render(v.resume))
		b.WriteString("\n\n")
	}

	for i, item := range v.items {
		cursor := "  "
		style := v.styles.Normal
		if i == v.selected {
			cursor = "> "
			style = v.styles.Selected
		}
		b.WriteString(cursor + style.Render(item.Label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [q] Quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the index of the highlighted option.
func (v *View) Selected() int {
	return v.selected
}
