package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	entries []domain.HistoryEntry
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Save stores a history entry.
func (s *HistoryStore) Save(_ context.Context, entry domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

// List returns all entries, most recent first.
func (s *HistoryStore) List(_ context.Context) ([]domain.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.HistoryEntry, len(s.entries))
	copy(result, s.entries)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].SubmittedAt.After(result[j].SubmittedAt)
	})
	return result, nil
}
