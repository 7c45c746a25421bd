package tui

import (
	"errors"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
)

// ErrMissingWizardController is returned when the wizard controller is not provided.
var ErrMissingWizardController = errors.New("tui: wizard controller is required")

// ErrMissingIntakeService is returned when the intake service is not provided.
var ErrMissingIntakeService = errors.New("tui: intake service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")

// ErrorMessage returns the text shown to the user for err.
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrExtractionFailed):
		return "Failed to process the uploaded file. Please try again."
	case errors.Is(err, domain.ErrSubmissionFailed):
		return "Failed to submit application. Please try again."
	case errors.Is(err, domain.ErrMissingRequiredField):
		return "Please fill in all required fields"
	case errors.Is(err, domain.ErrTermsNotAccepted):
		return "Please accept the terms and conditions"
	case errors.Is(err, domain.ErrMissingDocument):
		return "Please upload your CV before submitting"
	case errors.Is(err, domain.ErrBusy):
		return "Please wait for the current step to finish"
	case errors.Is(err, domain.ErrNotPDF):
		return "Please select a PDF document"
	default:
		return err.Error()
	}
}
