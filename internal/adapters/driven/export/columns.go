package export

import (
	"strings"
	"time"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
)

// headers are the export column titles, in order.
var headers = []string{
	"Reference",
	"Submitted At",
	"Full Name",
	"Student Number",
	"CV",
	"Leadership Roles",
	"ID",
}

// row returns the cell values for an entry, aligned with headers.
func row(e domain.HistoryEntry) []string {
	return []string{
		e.Reference,
		e.SubmittedAt.UTC().Format(time.RFC3339),
		e.FullName,
		e.StudentNumber,
		e.DocumentName,
		strings.Join(e.LeadershipRoles, "; "),
		e.ID,
	}
}
