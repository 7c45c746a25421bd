package domain

import "time"

// HistoryEntry records one successful submission.
type HistoryEntry struct {
	// ID is the unique identifier for the entry.
	ID string

	// Reference is the applicant-facing reference (e.g., APP-2026-3F9A1C2B).
	Reference string

	// FullName is the submitted "name surname".
	FullName string

	// StudentNumber is the submitted student number.
	StudentNumber string

	// DocumentName is the name of the submitted CV file.
	DocumentName string

	// LeadershipRoles are the submitted roles.
	LeadershipRoles []string

	// SubmittedAt is when the endpoint accepted the application.
	SubmittedAt time.Time
}

// ExportFormat identifies a history export file format.
type ExportFormat string

// Available export formats.
const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// IsValid returns true if the format is recognised.
func (f ExportFormat) IsValid() bool {
	return f == ExportFormatCSV || f == ExportFormatXLSX
}
