package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driven"
)

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore persists the wizard session as a JSON file.
type SnapshotStore struct {
	mu       sync.Mutex
	filePath string
}

// NewSnapshotStore creates a snapshot store in dataDir.
// If dataDir is empty, defaults to ~/.apply/data.
func NewSnapshotStore(dataDir string) (*SnapshotStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".apply", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &SnapshotStore{
		filePath: filepath.Join(dataDir, domain.SnapshotRecordKey+".json"),
	}, nil
}

// Path returns the snapshot file path.
func (s *SnapshotStore) Path() string {
	return s.filePath
}

// Load returns the persisted snapshot, or nil if the file does not exist.
func (s *SnapshotStore) Load(_ context.Context) (*domain.PersistedSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot domain.PersistedSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSnapshotCorrupt, err)
	}
	return &snapshot, nil
}

// Save writes the snapshot, replacing the file atomically.
func (s *SnapshotStore) Save(_ context.Context, snapshot *domain.PersistedSnapshot) error {
	if snapshot == nil {
		return domain.ErrInvalidInput
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(s.filePath), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("setting snapshot permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing snapshot: %w", err)
	}
	if err := os.Rename(tmpPath, s.filePath); err != nil {
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

// Clear removes the snapshot file.
func (s *SnapshotStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.filePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing snapshot: %w", err)
	}
	return nil
}
