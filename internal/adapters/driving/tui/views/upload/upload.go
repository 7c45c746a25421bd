// Package upload provides the document upload step.
package upload

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driving"
)

// ProcessingLabel is shown while the CV is being extracted.
const ProcessingLabel = "Processing your CV..."

// View lets the user type, paste or drop the path of their combined PDF.
// A terminal drop arrives as a bracketed paste and is submitted at once.
type View struct {
	styles     *styles.Styles
	intake     driving.IntakeService
	path       *input.Field
	previous   string
	processing bool
	width      int
	height     int
	ready      bool
}

// NewView creates a new upload view.
func NewView(s *styles.Styles, intake driving.IntakeService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		intake: intake,
		path:   input.NewField(s, "CV document", "Drag & drop your combined document here, or type its path", true),
		width:  80,
		height: 24,
	}
}

// Init focuses the path input.
func (v *View) Init() tea.Cmd {
	return v.path.Focus()
}

// Update handles messages for the upload view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.AdvanceCompleted:
		v.processing = false
		if msg.Err != nil {
			v.path.SetError("Failed to process the uploaded file. Please try again.")
		}
		return v, nil

	case tea.KeyMsg:
		if v.processing {
			return v, nil
		}
		if msg.Paste {
			v.path.SetValue(string(msg.Runes))
			return v, v.open(domain.OriginDrop)
		}
		if msg.Type == tea.KeyEnter {
			return v, v.open(domain.OriginPicker)
		}
		v.path.SetError("")
		return v, v.path.Update(msg)
	}

	return v, nil
}

// open validates the entered path and requests the upload transition.
func (v *View) open(origin domain.IntakeOrigin) tea.Cmd {
	doc, err := v.intake.Open(v.path.Value(), origin)
	if err != nil {
		v.path.SetError(err.Error())
		return func() tea.Msg { return messages.ErrorOccurred{Err: err} }
	}

	v.path.SetError("")
	v.processing = true
	return func() tea.Msg {
		return messages.AdvanceRequested{
			Payload: driving.UploadPayload{Document: doc},
			Label:   ProcessingLabel,
		}
	}
}

// View renders the upload step.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	if v.processing {
		b.WriteString(v.styles.Subtitle.Render(ProcessingLabel))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Muted.Render(
			"We're extracting information from your document. This may take a few moments."))
		return b.String()
	}

	b.WriteString(v.styles.Subtitle.Render("Upload Your Application"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Normal.Render(
		"Please upload a single PDF document containing both your CV and cover letter combined"))
	b.WriteString("\n\n")
	b.WriteString(v.path.View())
	b.WriteString("\n\n")

	if v.previous != "" {
		b.WriteString(v.styles.Warning.Render(fmt.Sprintf(
			"Previously selected: %s. Select it again to continue.", v.previous)))
		b.WriteString("\n")
	}

	b.WriteString(v.styles.Muted.Render(v.limitHint()))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[Enter] Upload  [ctrl+c] Quit"))

	return b.String()
}

func (v *View) limitHint() string {
	limit := v.intake.MaxSize()
	if limit <= 0 {
		return "Please combine your CV and cover letter into a single PDF document"
	}
	return fmt.Sprintf("Please combine your CV and cover letter into a single PDF document (max %dMB)",
		(limit+(1<<20)-1)>>20)
}

// SetPrevious names a document restored from a saved session.
func (v *View) SetPrevious(name string) {
	v.previous = name
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.path.SetWidth(width)
}

// Processing reports whether an upload is in flight.
func (v *View) Processing() bool {
	return v.processing
}

// Path returns the entered path.
func (v *View) Path() string {
	return v.path.Value()
}

// Err returns the inline error, if any.
func (v *View) Err() string {
	return v.path.Error()
}

// Reset clears the input.
func (v *View) Reset() {
	v.path.Reset()
	v.processing = false
}
