package tui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
)

func TestErrors_AreDistinct(t *testing.T) {
	errors := []error{
		ErrMissingWizardController,
		ErrMissingIntakeService,
		ErrInvalidPorts,
	}

	seen := make(map[string]bool)
	for _, err := range errors {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrMissingWizardController_Message(t *testing.T) {
	assert.Contains(t, ErrMissingWizardController.Error(), "wizard controller")
}

func TestErrMissingIntakeService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingIntakeService.Error(), "intake service")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"extraction", fmt.Errorf("%w: timeout", domain.ErrExtractionFailed), "Failed to process the uploaded file. Please try again."},
		{"submission", fmt.Errorf("%w: 502", domain.ErrSubmissionFailed), "Failed to submit application. Please try again."},
		{"field", &domain.FieldError{Field: "name", Label: "Name"}, "Please fill in all required fields"},
		{"terms", domain.ErrTermsNotAccepted, "Please accept the terms and conditions"},
		{"document", domain.ErrMissingDocument, "Please upload your CV before submitting"},
		{"busy", domain.ErrBusy, "Please wait for the current step to finish"},
		{"not pdf", fmt.Errorf("%w: cv.docx", domain.ErrNotPDF), "Please select a PDF document"},
		{"too large", fmt.Errorf("%w: cv.pdf is 6.0 MB", domain.ErrFileTooLarge), "file exceeds size limit: cv.pdf is 6.0 MB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage(tt.err))
		})
	}
}
