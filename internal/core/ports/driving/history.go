package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
)

// HistoryService records and exports successful submissions.
type HistoryService interface {
	// Record stores a history entry for an accepted application and returns it.
	Record(ctx context.Context, record domain.ApplicationRecord) (*domain.HistoryEntry, error)

	// List returns all entries, most recent first.
	List(ctx context.Context) ([]domain.HistoryEntry, error)

	// Export writes all entries to w in the given format.
	Export(ctx context.Context, w io.Writer, format domain.ExportFormat) error
}
