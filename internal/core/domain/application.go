package domain

import "strings"

// ExtractedRecord holds the structured fields derived from an uploaded CV.
// It is produced once per uploaded file and not modified afterwards.
type ExtractedRecord struct {
	// Experience lists professional job titles.
	Experience []string `json:"experience"`

	// Leadership lists formal leadership positions.
	Leadership []string `json:"leadership"`

	// ProfileSummary is a short professional summary.
	ProfileSummary string `json:"profile_summary"`

	// Education lists degree and qualification names.
	Education []string `json:"education"`

	// FullName is the applicant's name, empty when not found.
	FullName string `json:"full_name,omitempty"`

	// Email is the applicant's email address, empty when not found.
	Email string `json:"email,omitempty"`

	// Phone is the applicant's phone number, empty when not found.
	Phone string `json:"phone,omitempty"`
}

// Clone returns a deep copy of the record.
func (r *ExtractedRecord) Clone() *ExtractedRecord {
	if r == nil {
		return nil
	}
	c := *r
	c.Experience = cloneStrings(r.Experience)
	c.Leadership = cloneStrings(r.Leadership)
	c.Education = cloneStrings(r.Education)
	return &c
}

// SplitFullName splits a full name on single spaces. The first token is the
// name and the remaining tokens joined by single spaces are the surname.
// Both are empty when fullName is empty.
func SplitFullName(fullName string) (name, surname string) {
	if fullName == "" {
		return "", ""
	}
	parts := strings.Split(fullName, " ")
	return parts[0], strings.Join(parts[1:], " ")
}

// ApplicationRecord is the application assembled across the wizard steps.
// Name and surname are seeded from extraction, later steps fill the rest.
type ApplicationRecord struct {
	Name          string   `json:"name,omitempty"`
	Surname       string   `json:"surname,omitempty"`
	StudentNumber string   `json:"studentNumber,omitempty"`
	FullName      string   `json:"full_name,omitempty"`
	Email         string   `json:"email,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	Experience    []string `json:"experience,omitempty"`
	Leadership    []string `json:"leadership,omitempty"`
	Education     []string `json:"education,omitempty"`

	// ProfileSummary is the reviewed summary.
	ProfileSummary string `json:"profile_summary,omitempty"`

	// LeadershipRoles are the residence roles the applicant has held.
	LeadershipRoles []string `json:"leadershipRoles,omitempty"`

	// OtherRole is set when the applicant ticked "Other".
	OtherRole *string `json:"otherRole,omitempty"`

	// TermsAccepted must be true before submission.
	TermsAccepted bool `json:"terms_accepted,omitempty"`

	// CV is the uploaded file. It is never serialised.
	CV *Document `json:"-"`
}

// DisplayName returns "name surname" as sent to the form-relay endpoint.
func (r ApplicationRecord) DisplayName() string {
	return r.Name + " " + r.Surname
}

// Clone returns a deep copy of the record. The CV handle is shared.
func (r ApplicationRecord) Clone() ApplicationRecord {
	c := r
	c.Experience = cloneStrings(r.Experience)
	c.Leadership = cloneStrings(r.Leadership)
	c.Education = cloneStrings(r.Education)
	c.LeadershipRoles = cloneStrings(r.LeadershipRoles)
	if r.OtherRole != nil {
		other := *r.OtherRole
		c.OtherRole = &other
	}
	return c
}

// MissingFields returns the required fields that are blank, in form order.
func (r ApplicationRecord) MissingFields() []*FieldError {
	var missing []*FieldError
	if strings.TrimSpace(r.Name) == "" {
		missing = append(missing, &FieldError{Field: "name", Label: "Name"})
	}
	if strings.TrimSpace(r.Surname) == "" {
		missing = append(missing, &FieldError{Field: "surname", Label: "Surname"})
	}
	if strings.TrimSpace(r.StudentNumber) == "" {
		missing = append(missing, &FieldError{Field: "studentNumber", Label: "Student Number"})
	}
	return missing
}

// ApplicationPatch is a partial ApplicationRecord. Nil fields are left untouched
// by Merge, set fields replace the record's value.
type ApplicationPatch struct {
	Name            *string
	Surname         *string
	StudentNumber   *string
	FullName        *string
	Email           *string
	Phone           *string
	ProfileSummary  *string
	Experience      []string
	Leadership      []string
	Education       []string
	LeadershipRoles []string
	OtherRole       *string
	TermsAccepted   *bool
	CV              *Document
}

// Merge applies the patch on top of the record (later fields win) and returns the result.
func (r ApplicationRecord) Merge(p ApplicationPatch) ApplicationRecord {
	out := r.Clone()
	setString(&out.Name, p.Name)
	setString(&out.Surname, p.Surname)
	setString(&out.StudentNumber, p.StudentNumber)
	setString(&out.FullName, p.FullName)
	setString(&out.Email, p.Email)
	setString(&out.Phone, p.Phone)
	setString(&out.ProfileSummary, p.ProfileSummary)
	if p.Experience != nil {
		out.Experience = cloneStrings(p.Experience)
	}
	if p.Leadership != nil {
		out.Leadership = cloneStrings(p.Leadership)
	}
	if p.Education != nil {
		out.Education = cloneStrings(p.Education)
	}
	if p.LeadershipRoles != nil {
		out.LeadershipRoles = cloneStrings(p.LeadershipRoles)
	}
	if p.OtherRole != nil {
		other := *p.OtherRole
		out.OtherRole = &other
	}
	if p.TermsAccepted != nil {
		out.TermsAccepted = *p.TermsAccepted
	}
	if p.CV != nil {
		out.CV = p.CV
	}
	return out
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
