package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driven"
)

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is an in-memory implementation of driven.SnapshotStore.
// The snapshot is kept as encoded JSON so it behaves like the durable stores.
type SnapshotStore struct {
	mu  sync.RWMutex
	raw []byte
}

// NewSnapshotStore creates a new in-memory snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Load returns the stored snapshot, or nil if none exists.
func (s *SnapshotStore) Load(_ context.Context) (*domain.PersistedSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.raw == nil {
		return nil, nil
	}
	var snapshot domain.PersistedSnapshot
	if err := json.Unmarshal(s.raw, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSnapshotCorrupt, err)
	}
	return &snapshot, nil
}

// Save replaces the stored snapshot.
func (s *SnapshotStore) Save(_ context.Context, snapshot *domain.PersistedSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = data
	return nil
}

// Clear removes the stored snapshot.
func (s *SnapshotStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = nil
	return nil
}

// Raw returns the stored JSON record.
func (s *SnapshotStore) Raw() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.raw
}

// SetRaw replaces the stored JSON record, including with malformed data.
func (s *SnapshotStore) SetRaw(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = data
}
