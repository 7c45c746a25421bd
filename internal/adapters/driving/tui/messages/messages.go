// Package messages defines Bubbletea message types for the wizard.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driving"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSummary lists what to prepare before starting.
	ViewSummary ViewType = iota
	// ViewUpload selects the CV document.
	ViewUpload
	// ViewReview edits the extracted and personal fields.
	ViewReview
	// ViewComplete accepts the terms and submits.
	ViewComplete
	// ViewSuccess confirms the submission.
	ViewSuccess
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSummary:
		return "summary"
	case ViewUpload:
		return "upload"
	case ViewReview:
		return "review"
	case ViewComplete:
		return "complete"
	case ViewSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// ViewForStep returns the view that renders a wizard step.
func ViewForStep(step domain.Step) ViewType {
	switch step {
	case domain.StepUpload:
		return ViewUpload
	case domain.StepReview:
		return ViewReview
	case domain.StepComplete:
		return ViewComplete
	case domain.StepSuccess:
		return ViewSuccess
	default:
		return ViewSummary
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// AdvanceRequested asks the app to complete the current step with Payload.
// Label describes the work while it is in flight; empty for instant steps.
type AdvanceRequested struct {
	Payload driving.StepPayload
	Label   string
}

// AdvanceCompleted carries the result of a wizard advance.
type AdvanceCompleted struct {
	From domain.Step
	Err  error
}

// ClearRequested asks the app to forget the saved session.
type ClearRequested struct{}

// SessionCleared signals the saved session was forgotten.
type SessionCleared struct {
	Err error
}

// ToastExpired hides the toast with the given sequence number.
type ToastExpired struct {
	Seq int
}
