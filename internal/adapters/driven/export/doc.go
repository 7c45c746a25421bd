// Package export writes submission history to spreadsheet formats.
//
// Exporters:
//   - CSVExporter: comma-separated values
//   - XLSXExporter: Excel workbook with a single "Submissions" sheet
package export
