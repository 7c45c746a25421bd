package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driven"
)

// submittedAtLayout is fixed-width so submitted_at sorts lexicographically.
const submittedAtLayout = "2006-01-02T15:04:05.000000000Z"

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Save stores a history entry.
func (s *historyStore) Save(ctx context.Context, entry domain.HistoryEntry) error {
	if entry.ID == "" || entry.Reference == "" {
		return domain.ErrInvalidInput
	}

	roles, err := json.Marshal(entry.LeadershipRoles)
	if err != nil {
		return fmt.Errorf("marshalling leadership roles: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO submissions (id, reference, full_name, student_number, document_name, leadership_roles, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Reference, entry.FullName, entry.StudentNumber,
		nullString(entry.DocumentName), string(roles),
		entry.SubmittedAt.UTC().Format(submittedAtLayout))
	if err != nil {
		return fmt.Errorf("saving submission: %w", err)
	}
	return nil
}

// List returns all entries, most recent first.
func (s *historyStore) List(ctx context.Context) ([]domain.HistoryEntry, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, reference, full_name, student_number, document_name, leadership_roles, submitted_at
		FROM submissions
		ORDER BY submitted_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying submissions: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry //nolint:prealloc // size unknown from query
	for rows.Next() {
		entry, err := scanHistoryEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating submissions: %w", err)
	}

	return entries, nil
}

// ==================== Helper Functions ====================

func scanHistoryEntry(rows *sql.Rows) (*domain.HistoryEntry, error) {
	var entry domain.HistoryEntry
	var documentName sql.NullString
	var roles, submittedAt string

	if err := rows.Scan(&entry.ID, &entry.Reference, &entry.FullName, &entry.StudentNumber,
		&documentName, &roles, &submittedAt); err != nil {
		return nil, fmt.Errorf("scanning submission: %w", err)
	}

	if documentName.Valid {
		entry.DocumentName = documentName.String
	}
	if err := json.Unmarshal([]byte(roles), &entry.LeadershipRoles); err != nil {
		return nil, fmt.Errorf("unmarshalling leadership roles: %w", err)
	}
	t, err := time.Parse(submittedAtLayout, submittedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing submitted_at: %w", err)
	}
	entry.SubmittedAt = t

	return &entry, nil
}

// nullString returns nil for empty strings, otherwise the string.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
