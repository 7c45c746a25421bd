package driving

import (
	"context"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
)

// ExtractService runs field extraction on a file outside the wizard session.
type ExtractService interface {
	// Extract validates the file at path and returns the extracted fields.
	// The wizard session is not touched.
	Extract(ctx context.Context, path string) (*domain.ExtractedRecord, error)
}
