package driven

import (
	"context"
	"io"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
)

// HistoryStore persists successful submissions.
type HistoryStore interface {
	// Save stores a history entry.
	Save(ctx context.Context, entry domain.HistoryEntry) error

	// List returns all entries, most recent first.
	List(ctx context.Context) ([]domain.HistoryEntry, error)
}

// HistoryExporter writes history entries in a specific file format.
type HistoryExporter interface {
	// Format returns the format this exporter writes.
	Format() domain.ExportFormat

	// Export writes the entries to w.
	Export(w io.Writer, entries []domain.HistoryEntry) error
}
