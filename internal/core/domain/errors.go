package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Wizard Errors.

	// ErrBusy indicates a step transition was requested while an extraction
	// or submission is still in flight.
	ErrBusy = errors.New("wizard is processing")

	// ErrAlreadySubmitted indicates the application has already been submitted
	// in this session. A new session is required to apply again.
	ErrAlreadySubmitted = errors.New("application already submitted")

	// ErrUnexpectedPayload indicates a step payload does not belong to the current step.
	ErrUnexpectedPayload = errors.New("payload does not match current step")

	// ErrExtractionFailed indicates fields could not be extracted from the uploaded document.
	ErrExtractionFailed = errors.New("extraction failed")

	// ErrSubmissionFailed indicates the form-relay endpoint did not accept the application.
	ErrSubmissionFailed = errors.New("submission failed")

	// ErrSnapshotCorrupt indicates the persisted session could not be parsed.
	// Callers treat it as "no prior session".
	ErrSnapshotCorrupt = errors.New("persisted snapshot is corrupt")

	// ErrMissingRequiredField indicates a required application field is blank.
	ErrMissingRequiredField = errors.New("required field is empty")

	// ErrTermsNotAccepted indicates submission was attempted without accepting the terms.
	ErrTermsNotAccepted = errors.New("terms must be accepted before submitting")

	// ErrMissingDocument indicates there is no readable CV to submit.
	// After a restart only the file name survives, so the file must be selected again.
	ErrMissingDocument = errors.New("no CV document selected")

	// Intake Errors.

	// ErrNotPDF indicates the selected file is not a PDF document.
	ErrNotPDF = errors.New("file is not a PDF document")

	// ErrFileTooLarge indicates the selected file exceeds the configured size limit.
	ErrFileTooLarge = errors.New("file exceeds size limit")

	// ErrLLMUnavailable indicates the LLM service is not configured or unreachable.
	ErrLLMUnavailable = errors.New("LLM service unavailable")
)

// FieldError reports a single missing or invalid application field.
// It unwraps to ErrMissingRequiredField.
type FieldError struct {
	// Field is the record field key (e.g., "studentNumber").
	Field string

	// Label is the human-readable field label.
	Label string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("required field %s is empty", e.Label)
}

// Unwrap returns ErrMissingRequiredField.
func (e *FieldError) Unwrap() error {
	return ErrMissingRequiredField
}
