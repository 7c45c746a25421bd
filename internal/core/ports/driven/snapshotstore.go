package driven

import (
	"context"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
)

// SnapshotStore persists the wizard session under domain.SnapshotRecordKey.
type SnapshotStore interface {
	// Load returns the persisted snapshot, or nil if none exists.
	// Returns domain.ErrSnapshotCorrupt if the stored record cannot be parsed.
	Load(ctx context.Context) (*domain.PersistedSnapshot, error)

	// Save replaces the persisted snapshot.
	Save(ctx context.Context, snapshot *domain.PersistedSnapshot) error

	// Clear removes the persisted snapshot. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
