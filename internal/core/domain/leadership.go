package domain

// Leadership role labels with special selection behaviour.
const (
	// RoleNone excludes every other role.
	RoleNone = "None of the above"

	// RoleOther reveals a free-text role.
	RoleOther = "Other"
)

// LeadershipOptions returns the residence roles offered on the review step.
// RoleOther is not part of the list; it is rendered separately.
func LeadershipOptions() []string {
	return []string{
		"Sub Warden",
		"House Committee",
		"Mentor",
		"Floor Rep",
		"Entertainment Committee",
		"PR & Brands Committee",
		"Tutor",
		"Sports Committee",
		"Discipline Committee",
		"IEC (Independent Electoral Commission)",
		"Audit Committee",
		RoleNone,
	}
}

// RoleSelection tracks the ticked leadership roles in tick order.
type RoleSelection struct {
	selected []string
	other    string
}

// NewRoleSelection creates a selection from previously chosen roles.
// Roles that are not offered options are treated as the "Other" text.
func NewRoleSelection(roles []string, otherRole *string) *RoleSelection {
	s := &RoleSelection{}
	offered := make(map[string]bool)
	for _, opt := range LeadershipOptions() {
		offered[opt] = true
	}
	for _, role := range roles {
		if offered[role] {
			s.selected = append(s.selected, role)
		}
	}
	if otherRole != nil {
		s.selected = append(s.selected, RoleOther)
		s.other = *otherRole
	}
	return s
}

// Toggle ticks or unticks a role.
// Ticking RoleNone clears every other role; ticking anything else clears RoleNone.
func (s *RoleSelection) Toggle(role string) {
	if role == RoleNone {
		s.selected = []string{RoleNone}
		return
	}

	if s.IsSelected(role) {
		s.selected = removeRole(removeRole(s.selected, role), RoleNone)
		return
	}
	s.selected = append(removeRole(s.selected, RoleNone), role)
}

// IsSelected reports whether the role is ticked.
func (s *RoleSelection) IsSelected(role string) bool {
	for _, r := range s.selected {
		if r == role {
			return true
		}
	}
	return false
}

// OtherSelected reports whether "Other" is ticked.
func (s *RoleSelection) OtherSelected() bool {
	return s.IsSelected(RoleOther)
}

// SetOther sets the free-text role used when "Other" is ticked.
func (s *RoleSelection) SetOther(text string) {
	s.other = text
}

// Other returns the free-text role.
func (s *RoleSelection) Other() string {
	return s.other
}

// Roles returns the final role list. When "Other" is ticked and its text is
// non-empty, the text replaces the "Other" entry.
func (s *RoleSelection) Roles() []string {
	roles := make([]string, 0, len(s.selected))
	if s.OtherSelected() && s.other != "" {
		roles = append(roles, removeRole(s.selected, RoleOther)...)
		return append(roles, s.other)
	}
	return append(roles, s.selected...)
}

// OtherRole returns the free-text role when "Other" is ticked, else nil.
func (s *RoleSelection) OtherRole() *string {
	if !s.OtherSelected() {
		return nil
	}
	other := s.other
	return &other
}

func removeRole(roles []string, role string) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		if r != role {
			out = append(out, r)
		}
	}
	return out
}
