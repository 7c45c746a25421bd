package driven

import (
	"context"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
)

// Extractor derives structured fields from an uploaded CV.
// Implementations must honour context cancellation.
type Extractor interface {
	// Extract returns the fields found in the document.
	Extract(ctx context.Context, doc *domain.Document) (*domain.ExtractedRecord, error)
}

// TextExtractor converts a PDF document to plain text.
type TextExtractor interface {
	// ExtractText returns the document's text content.
	ExtractText(ctx context.Context, doc *domain.Document) (string, error)
}
