package domain

// Step is the ordinal position of the wizard.
type Step int

// Wizard steps in the order they are visited.
const (
	// StepSummary lists what the applicant needs before starting.
	StepSummary Step = iota
	// StepUpload accepts the combined CV and cover letter PDF.
	StepUpload
	// StepReview lets the applicant edit the extracted fields.
	StepReview
	// StepComplete collects the terms acceptance and submits.
	StepComplete
	// StepSuccess is the terminal view after a successful submission.
	StepSuccess
)

// IsValid returns true if the step is a known wizard position.
func (s Step) IsValid() bool {
	return s >= StepSummary && s <= StepSuccess
}

// String returns the string representation of the step.
func (s Step) String() string {
	switch s {
	case StepSummary:
		return "summary"
	case StepUpload:
		return "upload"
	case StepReview:
		return "review"
	case StepComplete:
		return "complete"
	case StepSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Title returns the heading shown for the step.
func (s Step) Title() string {
	switch s {
	case StepSummary:
		return "Application Summary"
	case StepUpload:
		return "Upload Documents"
	case StepReview:
		return "Review Details"
	case StepComplete:
		return "Complete Application"
	case StepSuccess:
		return "Application Submitted"
	default:
		return unknownDescription
	}
}

const unknownDescription = "Unknown"

// StepStatus is one entry of the step indicator.
type StepStatus struct {
	// Number is the 1-based position shown to the applicant.
	Number int

	// Title is the step heading.
	Title string

	// Completed is derived from the current step, never stored.
	Completed bool
}

// StepIndicator derives the visible step list from the current position.
// Review is folded into "Upload Documents" and is not shown separately.
func StepIndicator(current Step) []StepStatus {
	return []StepStatus{
		{Number: 1, Title: StepSummary.Title(), Completed: current > StepSummary},
		{Number: 2, Title: StepUpload.Title(), Completed: current > StepUpload},
		{Number: 3, Title: StepComplete.Title(), Completed: current > StepReview},
	}
}

// WizardState is the state of a single wizard session.
// It is owned by the wizard controller and only changes through step transitions.
type WizardState struct {
	// CurrentStep is the active wizard position.
	CurrentStep Step

	// Processing is true while an extraction or submission is in flight.
	Processing bool

	// ExtractedData is set once extraction for the uploaded file completes.
	ExtractedData *ExtractedRecord

	// ApplicationData accumulates fields across steps. Nil until the first merge.
	ApplicationData *ApplicationRecord

	// Documents holds the uploaded file handles.
	Documents Documents

	// Submitted is true after the form-relay endpoint accepted the application.
	Submitted bool
}

// Documents holds the file handles collected by the wizard.
type Documents struct {
	// CV is the combined CV and cover letter.
	CV *Document

	// Motivation is an optional separate motivation letter.
	Motivation *Document
}

// Names returns the display names of the documents for persistence.
func (d Documents) Names() DocumentNames {
	return DocumentNames{
		CV:         d.CV.NamePtr(),
		Motivation: d.Motivation.NamePtr(),
	}
}
