package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driven"
	"github.com/custodia-labs/apply-cli/internal/logger"
)

// Ensure XLSXExporter implements the interface.
var _ driven.HistoryExporter = (*XLSXExporter)(nil)

// SheetName is the worksheet holding the submissions.
const SheetName = "Submissions"

// columnWidths are applied to columns A onwards.
var columnWidths = []float64{20, 22, 28, 16, 28, 48, 38}

// XLSXExporter writes history as an Excel workbook.
type XLSXExporter struct{}

// NewXLSXExporter creates an XLSX exporter.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Format returns domain.ExportFormatXLSX.
func (*XLSXExporter) Format() domain.ExportFormat {
	return domain.ExportFormatXLSX
}

// Export writes a workbook with a header row and one row per entry to w.
func (*XLSXExporter) Export(w io.Writer, entries []domain.HistoryEntry) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("close workbook: %v", err)
		}
	}()

	// Rename the default sheet so the workbook has exactly one.
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeRow(f, 1, headers); err != nil {
		return err
	}
	for i, e := range entries {
		if err := writeRow(f, i+2, row(e)); err != nil {
			return err
		}
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		_ = f.SetColWidth(SheetName, col, col, width)
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, rowNum int, values []string) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, v); err != nil {
			return fmt.Errorf("set %s: %w", cell, err)
		}
	}
	return nil
}
