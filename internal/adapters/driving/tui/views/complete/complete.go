// Package complete provides the final step: terms acceptance and submission.
package complete

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driving"
)

// SubmittingLabel is shown while the application is sent.
const SubmittingLabel = "Submitting Application..."

const termsText = "By submitting this application, I confirm that the information provided is accurate\n" +
	"and I agree to the processing of my personal data for recruitment purposes."

// View holds the terms checkbox. Submitting is blocked until it is checked.
type View struct {
	styles     *styles.Styles
	record     domain.ApplicationRecord
	accepted   bool
	processing bool
	notice     string
	width      int
	height     int
	ready      bool
}

// NewView creates a new completion view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, width: 80, height: 24}
}

// SetRecord shows the application about to be submitted.
func (v *View) SetRecord(record domain.ApplicationRecord) {
	v.record = record
	v.accepted = record.TermsAccepted
}

// Init initialises the completion view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the completion view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.AdvanceCompleted:
		v.processing = false
		if msg.Err != nil {
			v.notice = "Failed to submit application. Please try again."
		}
		return v, nil

	case tea.KeyMsg:
		if v.processing {
			return v, nil
		}
		switch msg.String() {
		case " ", "x":
			v.accepted = !v.accepted
			v.notice = ""
		case "enter", "ctrl+s":
			return v, v.submit()
		}
	}

	return v, nil
}

func (v *View) submit() tea.Cmd {
	if !v.CanSubmit() {
		return nil
	}
	v.processing = true
	v.notice = ""
	return func() tea.Msg {
		return messages.AdvanceRequested{
			Payload: driving.CompletePayload{TermsAccepted: true},
			Label:   SubmittingLabel,
		}
	}
}

// CanSubmit reports whether the submit action is enabled.
func (v *View) CanSubmit() bool {
	return v.accepted && !v.processing
}

// View renders the completion step.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Complete Application"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Just a few more details to complete your application"))
	b.WriteString("\n\n")

	b.WriteString(v.renderRecord())
	b.WriteString("\n")

	box := "[ ]"
	if v.accepted {
		box = "[x]"
	}
	b.WriteString(v.styles.FocusedLabel.Render(box + " I accept the terms and conditions *"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(termsText))
	b.WriteString("\n\n")

	switch {
	case v.processing:
		b.WriteString(v.styles.Warning.Render(SubmittingLabel))
	case v.accepted:
		b.WriteString(v.styles.Selected.Render(" Submit Application "))
	default:
		b.WriteString(v.styles.Muted.Render(" Submit Application "))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Please fill in all required fields to submit your application"))
	}

	if v.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Error.Render(v.notice))
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[space] Accept terms  [Enter] Submit  [ctrl+c] Quit"))
	return b.String()
}

func (v *View) renderRecord() string {
	var b strings.Builder
	row := func(label, value string) {
		if value == "" {
			value = "-"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", v.styles.Muted.Render(label+":"), v.styles.Normal.Render(value)))
	}

	row("Name", strings.TrimSpace(v.record.DisplayName()))
	row("Student Number", v.record.StudentNumber)
	cv := ""
	if v.record.CV != nil {
		cv = v.record.CV.Name
	}
	row("CV", cv)
	row("Leadership Roles", strings.Join(v.record.LeadershipRoles, ", "))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Accepted reports whether the terms box is checked.
func (v *View) Accepted() bool {
	return v.accepted
}

// Processing reports whether a submission is in flight.
func (v *View) Processing() bool {
	return v.processing
}

// Notice returns the error notice.
func (v *View) Notice() string {
	return v.notice
}
