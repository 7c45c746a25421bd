package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driven"
)

// Ensure CSVExporter implements the interface.
var _ driven.HistoryExporter = (*CSVExporter)(nil)

// CSVExporter writes history as CSV with a header row.
type CSVExporter struct{}

// NewCSVExporter creates a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Format returns domain.ExportFormatCSV.
func (*CSVExporter) Format() domain.ExportFormat {
	return domain.ExportFormatCSV
}

// Export writes entries to w.
func (*CSVExporter) Export(w io.Writer, entries []domain.HistoryEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write(row(e)); err != nil {
			return fmt.Errorf("write csv row %s: %w", e.Reference, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
