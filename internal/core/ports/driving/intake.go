package driving

import "github.com/custodia-labs/apply-cli/internal/core/domain"

// IntakeService validates files offered to the upload step.
type IntakeService interface {
	// Open validates the file at path and returns a document handle.
	// Returns domain.ErrNotPDF or domain.ErrFileTooLarge on rejection,
	// whatever the origin.
	Open(path string, origin domain.IntakeOrigin) (*domain.Document, error)

	// MaxSize returns the configured size limit in bytes. Zero means unlimited.
	MaxSize() int64
}
