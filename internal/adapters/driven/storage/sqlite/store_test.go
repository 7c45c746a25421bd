package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "apply.db"), store.Path())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_MigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.SnapshotStore().Save(context.Background(), &domain.PersistedSnapshot{}))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	var version int
	require.NoError(t, second.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 2, version)

	snapshot, err := second.SnapshotStore().Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, snapshot)
}

// ==================== SnapshotStore Tests ====================

func TestSnapshotStore_Load_Empty(t *testing.T) {
	store := setupTestStore(t)

	snapshot, err := store.SnapshotStore().Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestSnapshotStore_SaveAndLoad(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	snapshots := store.SnapshotStore()
	cv := "resume.pdf"
	other := "Chess Club"

	original := &domain.PersistedSnapshot{
		ExtractedData: &domain.ExtractedRecord{
			Experience: []string{"Previous experience 1"},
			FullName:   "Extracted Name",
		},
		ApplicationData: &domain.ApplicationRecord{
			Name:            "Extracted",
			Surname:         "Name",
			StudentNumber:   "STD123",
			LeadershipRoles: []string{"Mentor", "Chess Club"},
			OtherRole:       &other,
		},
		Documents: domain.DocumentNames{CV: &cv},
	}

	require.NoError(t, snapshots.Save(ctx, original))

	loaded, err := snapshots.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestSnapshotStore_Save_Overwrites(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	snapshots := store.SnapshotStore()

	require.NoError(t, snapshots.Save(ctx, &domain.PersistedSnapshot{
		ApplicationData: &domain.ApplicationRecord{Name: "First"},
	}))
	require.NoError(t, snapshots.Save(ctx, &domain.PersistedSnapshot{
		ApplicationData: &domain.ApplicationRecord{Name: "Second"},
	}))

	loaded, err := snapshots.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Second", loaded.ApplicationData.Name)
}

func TestSnapshotStore_Save_Nil(t *testing.T) {
	store := setupTestStore(t)

	err := store.SnapshotStore().Save(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSnapshotStore_Load_Corrupt(t *testing.T) {
	store := setupTestStore(t)
	_, err := store.db.Exec(
		"INSERT INTO kv_records (key, value, updated_at) VALUES (?, ?, ?)",
		domain.SnapshotRecordKey, "{broken", time.Now().UTC().Format(time.RFC3339),
	)
	require.NoError(t, err)

	_, err = store.SnapshotStore().Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrSnapshotCorrupt)
}

func TestSnapshotStore_Clear(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	snapshots := store.SnapshotStore()
	require.NoError(t, snapshots.Save(ctx, &domain.PersistedSnapshot{}))

	require.NoError(t, snapshots.Clear(ctx))
	require.NoError(t, snapshots.Clear(ctx), "clearing twice is not an error")

	loaded, err := snapshots.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

// ==================== HistoryStore Tests ====================

func TestHistoryStore_SaveAndList(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	history := store.HistoryStore()
	now := time.Now().UTC()

	older := domain.HistoryEntry{
		ID:              "id-1",
		Reference:       "APP-2026-AAAAAAAA",
		FullName:        "Extracted Name",
		StudentNumber:   "STD123",
		DocumentName:    "resume.pdf",
		LeadershipRoles: []string{"Mentor"},
		SubmittedAt:     now.Add(-time.Hour),
	}
	newer := domain.HistoryEntry{
		ID:            "id-2",
		Reference:     "APP-2026-BBBBBBBB",
		FullName:      "Thandi van Wyk",
		StudentNumber: "VWYTHA001",
		SubmittedAt:   now,
	}
	require.NoError(t, history.Save(ctx, older))
	require.NoError(t, history.Save(ctx, newer))

	entries, err := history.List(ctx)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "id-2", entries[0].ID)
	assert.Equal(t, "id-1", entries[1].ID)
	assert.Equal(t, "resume.pdf", entries[1].DocumentName)
	assert.Equal(t, []string{"Mentor"}, entries[1].LeadershipRoles)
	assert.Empty(t, entries[0].DocumentName)
	assert.WithinDuration(t, older.SubmittedAt, entries[1].SubmittedAt, time.Microsecond)
}

func TestHistoryStore_Save_DuplicateReference(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	history := store.HistoryStore()
	entry := domain.HistoryEntry{ID: "id-1", Reference: "APP-2026-AAAAAAAA", SubmittedAt: time.Now()}
	require.NoError(t, history.Save(ctx, entry))

	entry.ID = "id-2"
	err := history.Save(ctx, entry)

	assert.Error(t, err)
}

func TestHistoryStore_Save_MissingID(t *testing.T) {
	store := setupTestStore(t)

	err := store.HistoryStore().Save(context.Background(), domain.HistoryEntry{Reference: "APP-2026-X"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistoryStore_List_Empty(t *testing.T) {
	store := setupTestStore(t)

	entries, err := store.HistoryStore().List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, entries)
}
