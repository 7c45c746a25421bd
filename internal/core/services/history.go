package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driven"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService records and exports successful submissions.
type HistoryService struct {
	store     driven.HistoryStore
	exporters map[domain.ExportFormat]driven.HistoryExporter
	now       func() time.Time
}

// NewHistoryService creates a history service with the given exporters.
func NewHistoryService(store driven.HistoryStore, exporters ...driven.HistoryExporter) *HistoryService {
	s := &HistoryService{
		store:     store,
		exporters: make(map[domain.ExportFormat]driven.HistoryExporter),
		now:       time.Now,
	}
	for _, e := range exporters {
		s.exporters[e.Format()] = e
	}
	return s
}

// Record stores a history entry for an accepted application.
func (s *HistoryService) Record(ctx context.Context, record domain.ApplicationRecord) (*domain.HistoryEntry, error) {
	now := s.now().UTC()
	id := uuid.New()

	entry := domain.HistoryEntry{
		ID:              id.String(),
		Reference:       NewReference(id, now),
		FullName:        record.DisplayName(),
		StudentNumber:   record.StudentNumber,
		LeadershipRoles: append([]string(nil), record.LeadershipRoles...),
		SubmittedAt:     now,
	}
	if record.CV != nil {
		entry.DocumentName = record.CV.Name
	}

	if err := s.store.Save(ctx, entry); err != nil {
		return nil, fmt.Errorf("save history entry: %w", err)
	}
	return &entry, nil
}

// List returns all entries, most recent first.
func (s *HistoryService) List(ctx context.Context) ([]domain.HistoryEntry, error) {
	return s.store.List(ctx)
}

// Export writes all entries to w in the given format.
func (s *HistoryService) Export(ctx context.Context, w io.Writer, format domain.ExportFormat) error {
	exporter, ok := s.exporters[format]
	if !ok {
		return fmt.Errorf("%w: unsupported export format: %s", domain.ErrInvalidInput, format)
	}

	entries, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}
	return exporter.Export(w, entries)
}

// NewReference returns an applicant-facing reference of the form APP-<year>-<8 hex digits>.
func NewReference(id uuid.UUID, at time.Time) string {
	hex := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return fmt.Sprintf("APP-%d-%s", at.Year(), hex[:8])
}
