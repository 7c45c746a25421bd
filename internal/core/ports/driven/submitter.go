package driven

import (
	"context"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
)

// Submitter delivers a completed application to the form-relay endpoint.
type Submitter interface {
	// Submit sends the application in a single request.
	// The record's CV document must be readable.
	Submit(ctx context.Context, record domain.ApplicationRecord) error
}
