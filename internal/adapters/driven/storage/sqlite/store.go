package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/apply-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to
// the snapshot and history store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.apply/data/apply.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".apply", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "apply.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SnapshotStore returns a SnapshotStore interface backed by this store.
func (s *Store) SnapshotStore() driven.SnapshotStore {
	return &snapshotStore{store: s}
}

// HistoryStore returns a HistoryStore interface backed by this store.
func (s *Store) HistoryStore() driven.HistoryStore {
	return &historyStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_kv_records.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Snapshot Store ====================

// snapshotStore implements driven.SnapshotStore.
type snapshotStore struct {
	store *Store
}

var _ driven.SnapshotStore = (*snapshotStore)(nil)

// Load returns the persisted snapshot, or nil if none exists.
func (s *snapshotStore) Load(ctx context.Context) (*domain.PersistedSnapshot, error) {
	var value string
	err := s.store.db.QueryRowContext(ctx,
		"SELECT value FROM kv_records WHERE key = ?", domain.SnapshotRecordKey,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying snapshot: %w", err)
	}

	var snapshot domain.PersistedSnapshot
	if err := json.Unmarshal([]byte(value), &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSnapshotCorrupt, err)
	}
	return &snapshot, nil
}

// Save replaces the persisted snapshot.
func (s *snapshotStore) Save(ctx context.Context, snapshot *domain.PersistedSnapshot) error {
	if snapshot == nil {
		return domain.ErrInvalidInput
	}
	value, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshalling snapshot: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO kv_records (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, domain.SnapshotRecordKey, string(value), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// Clear removes the persisted snapshot.
func (s *snapshotStore) Clear(ctx context.Context) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM kv_records WHERE key = ?", domain.SnapshotRecordKey)
	if err != nil {
		return fmt.Errorf("clearing snapshot: %w", err)
	}
	return nil
}
