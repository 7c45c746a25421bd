package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
)

func TestExtractService_Extract(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cv.pdf", minimalPDF)
	extractor := &fakeExtractor{record: &domain.ExtractedRecord{FullName: "Jane Doe"}}
	service := NewExtractService(NewIntakeService(0), extractor)

	rec, err := service.Extract(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", rec.FullName)
	assert.Equal(t, 1, extractor.calls)
}

func TestExtractService_IntakeRejects(t *testing.T) {
	path := writeFile(t, t.TempDir(), "notes.pdf", "plain text, not a pdf")
	extractor := &fakeExtractor{record: &domain.ExtractedRecord{}}
	service := NewExtractService(NewIntakeService(0), extractor)

	_, err := service.Extract(context.Background(), path)

	assert.ErrorIs(t, err, domain.ErrNotPDF)
	assert.Zero(t, extractor.calls)
}

func TestExtractService_MissingFile(t *testing.T) {
	service := NewExtractService(NewIntakeService(0), &fakeExtractor{})

	_, err := service.Extract(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExtractService_ExtractorFails(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cv.pdf", minimalPDF)
	cause := errors.New("pdftotext missing")
	service := NewExtractService(NewIntakeService(0), &fakeExtractor{err: cause})

	_, err := service.Extract(context.Background(), path)

	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
	assert.ErrorIs(t, err, cause)
}
