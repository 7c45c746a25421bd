package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driven"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driving"
)

// Ensure ExtractService implements the interface.
var _ driving.ExtractService = (*ExtractService)(nil)

// ExtractService runs the configured extractor on a single file.
type ExtractService struct {
	intake    driving.IntakeService
	extractor driven.Extractor
}

// NewExtractService creates an extract service.
func NewExtractService(intake driving.IntakeService, extractor driven.Extractor) *ExtractService {
	return &ExtractService{intake: intake, extractor: extractor}
}

// Extract validates the file with intake and extracts its fields.
func (s *ExtractService) Extract(ctx context.Context, path string) (*domain.ExtractedRecord, error) {
	doc, err := s.intake.Open(path, domain.OriginPicker)
	if err != nil {
		return nil, err
	}

	rec, err := s.extractor.Extract(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrExtractionFailed, err)
	}
	return rec, nil
}
