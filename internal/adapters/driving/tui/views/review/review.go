// Package review provides the step where extracted fields are checked and edited.
package review

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driving"
)

// Field keys, matching domain.FieldError.Field for the required ones.
const (
	fieldName          = "name"
	fieldSurname       = "surname"
	fieldStudentNumber = "studentNumber"
	fieldFullName      = "full_name"
	fieldEmail         = "email"
	fieldPhone         = "phone"
	fieldSummary       = "profile_summary"
	fieldExperience    = "experience"
	fieldEducation     = "education"
	fieldLeadership    = "leadership"
)

var requiredFields = []string{fieldName, fieldSurname, fieldStudentNumber}

// reservedLines is the height used by the app header, step indicator and status bar.
const reservedLines = 10

// View is the review form.
type View struct {
	styles *styles.Styles

	fields  []input.Control
	byKey   map[string]input.Control
	roles   *domain.RoleSelection
	options []string
	other   *input.Field
	focus   int
	cursor  int
	notice  string
	width   int
	height  int
	ready   bool
	loaded  bool

	processing bool
}

// NewView creates a new review view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles:  s,
		byKey:   make(map[string]input.Control),
		roles:   domain.NewRoleSelection(nil, nil),
		options: append(domain.LeadershipOptions(), domain.RoleOther),
		other:   input.NewField(s, "Other role", "Describe your other leadership role", false),
		width:   80,
		height:  24,
	}

	v.add(fieldName, input.NewField(s, "Name", "", true))
	v.add(fieldSurname, input.NewField(s, "Surname", "", true))
	v.add(fieldStudentNumber, input.NewField(s, "Student Number", "e.g. SMTJAN001", true))
	v.add(fieldFullName, input.NewField(s, "Full Name", "", false))
	v.add(fieldEmail, input.NewField(s, "Email", "", false))
	v.add(fieldPhone, input.NewField(s, "Phone", "", false))
	v.add(fieldSummary, input.NewField(s, "Profile Summary", "", false))
	v.add(fieldExperience, input.NewArea(s, "Experience (one per line)", "", 4))
	v.add(fieldEducation, input.NewArea(s, "Education (one per line)", "", 3))
	v.add(fieldLeadership, input.NewArea(s, "Leadership (one per line)", "", 3))

	return v
}

func (v *View) add(key string, c input.Control) {
	v.fields = append(v.fields, c)
	v.byKey[key] = c
}

// Load fills the form from the accumulated record, falling back to the extracted one.
func (v *View) Load(app domain.ApplicationRecord, extracted *domain.ExtractedRecord) {
	if extracted == nil {
		extracted = &domain.ExtractedRecord{}
	}

	v.byKey[fieldName].SetValue(app.Name)
	v.byKey[fieldSurname].SetValue(app.Surname)
	v.byKey[fieldStudentNumber].SetValue(app.StudentNumber)
	v.byKey[fieldFullName].SetValue(firstNonEmpty(app.FullName, extracted.FullName))
	v.byKey[fieldEmail].SetValue(firstNonEmpty(app.Email, extracted.Email))
	v.byKey[fieldPhone].SetValue(firstNonEmpty(app.Phone, extracted.Phone))
	v.byKey[fieldSummary].SetValue(firstNonEmpty(app.ProfileSummary, extracted.ProfileSummary))
	v.setLines(fieldExperience, firstNonEmptyList(app.Experience, extracted.Experience))
	v.setLines(fieldEducation, firstNonEmptyList(app.Education, extracted.Education))
	v.setLines(fieldLeadership, firstNonEmptyList(app.Leadership, extracted.Leadership))

	v.roles = domain.NewRoleSelection(app.LeadershipRoles, app.OtherRole)
	v.other.SetValue(v.roles.Other())

	for _, c := range v.fields {
		c.SetError("")
	}
	v.notice = ""
	v.loaded = true
	v.processing = false
	v.setFocus(0)
}

func (v *View) setLines(key string, lines []string) {
	if area, ok := v.byKey[key].(*input.Area); ok {
		area.SetLines(lines)
	}
}

// Init focuses the first field.
func (v *View) Init() tea.Cmd {
	return v.setFocus(v.focus)
}

// focusCount is the number of focus stops: fields, the checklist, and the
// other-role field when "Other" is selected.
func (v *View) focusCount() int {
	n := len(v.fields) + 1
	if v.roles.OtherSelected() {
		n++
	}
	return n
}

func (v *View) checklistIndex() int {
	return len(v.fields)
}

func (v *View) otherIndex() int {
	return len(v.fields) + 1
}

func (v *View) setFocus(i int) tea.Cmd {
	if i < 0 {
		i = 0
	}
	if i >= v.focusCount() {
		i = v.focusCount() - 1
	}
	v.focus = i

	var cmd tea.Cmd
	for idx, c := range v.fields {
		if idx == i {
			cmd = c.Focus()
		} else {
			c.Blur()
		}
	}
	if i == v.otherIndex() {
		cmd = v.other.Focus()
	} else {
		v.other.Blur()
	}
	return cmd
}

// Update handles messages for the review view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.AdvanceCompleted:
		v.processing = false
		if msg.Err != nil {
			v.showError(msg.Err)
		}
		return v, nil

	case tea.KeyMsg:
		if v.processing {
			return v, nil
		}
		return v, v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+s":
		return v.submit()
	case "tab":
		return v.setFocus((v.focus + 1) % v.focusCount())
	case "shift+tab":
		return v.setFocus((v.focus - 1 + v.focusCount()) % v.focusCount())
	}

	if v.focus == v.checklistIndex() {
		return v.handleChecklistKey(msg)
	}

	var target input.Control
	if v.focus == v.otherIndex() {
		target = v.other
	} else {
		target = v.fields[v.focus]
	}

	// Areas take enter and arrows for editing; single-line fields move focus.
	if _, isArea := target.(*input.Area); !isArea {
		switch msg.String() {
		case "enter":
			if v.focus == v.otherIndex() {
				return v.submit()
			}
			return v.setFocus(v.focus + 1)
		case "down":
			return v.setFocus(v.focus + 1)
		case "up":
			return v.setFocus(v.focus - 1)
		}
	}

	target.SetError("")
	if v.focus == v.otherIndex() {
		cmd := v.other.Update(msg)
		v.roles.SetOther(v.other.Value())
		return cmd
	}
	return target.Update(msg)
}

func (v *View) handleChecklistKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		} else {
			return v.setFocus(v.focus - 1)
		}
	case "down", "j":
		if v.cursor < len(v.options)-1 {
			v.cursor++
		} else if v.roles.OtherSelected() {
			return v.setFocus(v.otherIndex())
		}
	case " ", "x":
		v.roles.Toggle(v.options[v.cursor])
	case "enter":
		if v.roles.OtherSelected() {
			return v.setFocus(v.otherIndex())
		}
		return v.submit()
	}
	return nil
}

// submit checks required fields and requests the review transition.
func (v *View) submit() tea.Cmd {
	missing := false
	for _, key := range requiredFields {
		c := v.byKey[key]
		if strings.TrimSpace(c.Value()) == "" {
			c.SetError(fmt.Sprintf("%s is required", c.Label()))
			missing = true
		}
	}
	if missing {
		v.notice = "Please fill in all required fields"
		return v.focusFirstError()
	}
	v.notice = ""
	v.processing = true

	payload := v.Payload()
	return func() tea.Msg {
		return messages.AdvanceRequested{Payload: payload}
	}
}

func (v *View) focusFirstError() tea.Cmd {
	for _, key := range requiredFields {
		c := v.byKey[key]
		if strings.TrimSpace(c.Value()) == "" {
			for i, f := range v.fields {
				if f == c {
					return v.setFocus(i)
				}
			}
		}
	}
	return nil
}

// showError marks the field named by a *domain.FieldError, or shows a notice.
func (v *View) showError(err error) {
	var fe *domain.FieldError
	if errors.As(err, &fe) {
		if c, ok := v.byKey[fe.Field]; ok {
			c.SetError(fmt.Sprintf("%s is required", fe.Label))
		}
		v.notice = "Please fill in all required fields"
		return
	}
	v.notice = err.Error()
}

// Payload builds the review payload from the form.
func (v *View) Payload() driving.ReviewPayload {
	value := func(key string) *string {
		s := strings.TrimSpace(v.byKey[key].Value())
		return &s
	}
	lines := func(key string) []string {
		if area, ok := v.byKey[key].(*input.Area); ok {
			return area.Lines()
		}
		return []string{}
	}

	return driving.ReviewPayload{ApplicationPatch: domain.ApplicationPatch{
		Name:            value(fieldName),
		Surname:         value(fieldSurname),
		StudentNumber:   value(fieldStudentNumber),
		FullName:        value(fieldFullName),
		Email:           value(fieldEmail),
		Phone:           value(fieldPhone),
		ProfileSummary:  value(fieldSummary),
		Experience:      lines(fieldExperience),
		Education:       lines(fieldEducation),
		Leadership:      lines(fieldLeadership),
		LeadershipRoles: v.roles.Roles(),
		OtherRole:       v.roles.OtherRole(),
	}}
}

// Processing reports whether a submitted review is awaiting the wizard.
func (v *View) Processing() bool {
	return v.processing
}

// View renders the form, scrolled so the focused control is visible.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Review Your Details"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Check the information we extracted and fill in anything missing"))
	b.WriteString("\n\n")

	blocks := make([]string, 0, v.focusCount())
	for _, c := range v.fields {
		blocks = append(blocks, c.View())
	}
	blocks = append(blocks, v.renderChecklist())
	if v.roles.OtherSelected() {
		blocks = append(blocks, v.other.View())
	}

	for _, block := range v.visible(blocks) {
		b.WriteString(block)
		b.WriteString("\n")
	}

	if v.notice != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(v.notice))
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[tab] Next field  [space] Toggle role  [ctrl+s] Continue"))

	return b.String()
}

// visible returns the blocks that fit the height, always including the focused one.
func (v *View) visible(blocks []string) []string {
	budget := v.height - reservedLines
	if budget <= 0 {
		return blocks[v.focus : v.focus+1]
	}

	heights := make([]int, len(blocks))
	for i, block := range blocks {
		heights[i] = strings.Count(block, "\n") + 1
	}

	start, used := v.focus, heights[v.focus]
	for start > 0 && used+heights[start-1] <= budget {
		start--
		used += heights[start]
	}
	end := v.focus + 1
	for end < len(blocks) && used+heights[end] <= budget {
		used += heights[end]
		end++
	}
	return blocks[start:end]
}

func (v *View) renderChecklist() string {
	focused := v.focus == v.checklistIndex()

	var b strings.Builder
	label := v.styles.Normal
	if focused {
		label = v.styles.FocusedLabel
	}
	b.WriteString(label.Render("Previous leadership roles at the residence"))

	for i, opt := range v.options {
		box := "[ ]"
		if v.roles.IsSelected(opt) {
			box = "[x]"
		}
		cursor := "  "
		style := v.styles.Normal
		if focused && i == v.cursor {
			cursor = "> "
			style = v.styles.Selected
		}
		b.WriteString("\n")
		b.WriteString(cursor + style.Render(box+" "+opt))
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	for _, c := range v.fields {
		c.SetWidth(width)
	}
	v.other.SetWidth(width)
}

// Loaded reports whether the form was filled from a session.
func (v *View) Loaded() bool {
	return v.loaded
}

// Focus returns the focused stop index.
func (v *View) Focus() int {
	return v.focus
}

// Roles returns the current role selection.
func (v *View) Roles() *domain.RoleSelection {
	return v.roles
}

// Notice returns the form-level message.
func (v *View) Notice() string {
	return v.notice
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}

func firstNonEmptyList(lists ...[]string) []string {
	for _, l := range lists {
		if len(l) > 0 {
			return l
		}
	}
	return nil
}
