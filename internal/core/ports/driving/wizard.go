package driving

import (
	"context"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
)

// WizardController sequences the application wizard.
// It owns the session state; callers only observe it through the accessors.
type WizardController interface {
	// Advance completes the current step with its payload and moves forward.
	// Upload and Complete payloads block on extraction and submission.
	Advance(ctx context.Context, payload StepPayload) error

	// CurrentStep returns the active step.
	CurrentStep() domain.Step

	// Accumulated returns a copy of the application record built so far.
	Accumulated() domain.ApplicationRecord

	// Extracted returns a copy of the extracted record, or nil before upload.
	Extracted() *domain.ExtractedRecord

	// Documents returns the session's document handles.
	Documents() domain.Documents

	// Processing reports whether an extraction or submission is in flight.
	Processing() bool

	// Submitted reports whether the application was accepted.
	Submitted() bool

	// Steps returns the step indicator entries for the current step.
	Steps() []domain.StepStatus

	// LastReference returns the history reference of the submission, if recorded.
	LastReference() string

	// Snapshot returns the persistable view of the session.
	Snapshot() *domain.PersistedSnapshot

	// Clear forgets the persisted session and the accumulated data.
	// The current step is kept.
	Clear(ctx context.Context) error
}

// StepPayload is the completion payload of a wizard step.
type StepPayload interface {
	// CompletesStep returns the step this payload completes.
	CompletesStep() domain.Step
}

// AcknowledgePayload completes the summary step.
type AcknowledgePayload struct{}

// CompletesStep returns domain.StepSummary.
func (AcknowledgePayload) CompletesStep() domain.Step { return domain.StepSummary }

// UploadPayload completes the upload step with an intake-validated document.
type UploadPayload struct {
	Document *domain.Document
}

// CompletesStep returns domain.StepUpload.
func (UploadPayload) CompletesStep() domain.Step { return domain.StepUpload }

// ReviewPayload completes the review step with the edited fields.
type ReviewPayload struct {
	domain.ApplicationPatch
}

// CompletesStep returns domain.StepReview.
func (ReviewPayload) CompletesStep() domain.Step { return domain.StepReview }

// CompletePayload completes the final step and triggers submission.
type CompletePayload struct {
	TermsAccepted bool
}

// CompletesStep returns domain.StepComplete.
func (CompletePayload) CompletesStep() domain.Step { return domain.StepComplete }
