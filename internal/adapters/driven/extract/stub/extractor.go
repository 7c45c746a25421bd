// Package stub provides an Extractor that ignores the document and returns
// a fixed sample record after a simulated processing delay.
package stub

import (
	"context"
	"time"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driven"
	"github.com/custodia-labs/apply-cli/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor returns SampleRecord for every document.
type Extractor struct {
	delay time.Duration
}

// New creates a stub extractor. A zero or negative delay returns immediately.
func New(delay time.Duration) *Extractor {
	return &Extractor{delay: delay}
}

// SampleRecord returns the record produced for every document.
func SampleRecord() *domain.ExtractedRecord {
	return &domain.ExtractedRecord{
		Experience:     []string{"Previous experience 1", "Previous experience 2"},
		Leadership:     []string{"Leadership role 1", "Leadership role 2"},
		ProfileSummary: "Extracted profile summary from CV",
		Education:      []string{"Degree from University"},
		FullName:       "Extracted Name",
		Email:          "extracted@example.com",
		Phone:          "123-456-7890",
	}
}

// Extract waits for the configured delay and returns SampleRecord.
// Cancelling ctx abandons the wait.
func (e *Extractor) Extract(ctx context.Context, doc *domain.Document) (*domain.ExtractedRecord, error) {
	if doc != nil {
		logger.Debug("stub extraction for %s (%s)", doc.Name, e.delay)
	}

	if e.delay > 0 {
		timer := time.NewTimer(e.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	return SampleRecord(), nil
}
