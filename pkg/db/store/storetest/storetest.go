package storetest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mwantia/gomemo/pkg/db/models"
	"github.com/mwantia/gomemo/pkg/db/store"
	"github.com/stretchr/testify/require"
)

// NewSQLiteStore opens a migrated SQLite store in a temporary directory.
// The store is closed when the test finishes.
func NewSQLiteStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(store.SQLiteConfig{
		Path: filepath.Join(t.TempDir(), "gomemo.db"),
	})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Connect(ctx))
	require.NoError(t, s.Migrate(ctx))

	t.Cleanup(func() {
		s.Close()
	})
	return s
}

// FailingStore wraps a store and fails the calls whose names are listed in
// Fail, e.g. "UpdateShortcut".
type FailingStore struct {
	store.MetadataStore

	Err  error
	Fail map[string]bool
}

func (f *FailingStore) fails(op string) bool {
	return f.Fail[op]
}

func (f *FailingStore) CreateShortcut(ctx context.Context, shortcut *models.Shortcut) error {
	if f.fails("CreateShortcut") {
		return f.Err
	}
	return f.MetadataStore.CreateShortcut(ctx, shortcut)
}

func (f *FailingStore) ListShortcuts(ctx context.Context, creatorID int32) ([]models.Shortcut, error) {
	if f.fails("ListShortcuts") {
		return nil, f.Err
	}
	return f.MetadataStore.ListShortcuts(ctx, creatorID)
}

func (f *FailingStore) UpdateShortcut(ctx context.Context, id string, update store.ShortcutUpdate) (*models.Shortcut, error) {
	if f.fails("UpdateShortcut") {
		return nil, f.Err
	}
	return f.MetadataStore.UpdateShortcut(ctx, id, update)
}

func (f *FailingStore) DeleteShortcut(ctx context.Context, id string) error {
	if f.fails("DeleteShortcut") {
		return f.Err
	}
	return f.MetadataStore.DeleteShortcut(ctx, id)
}

func (f *FailingStore) UpsertTag(ctx context.Context, creatorID int32, name string) error {
	if f.fails("UpsertTag") {
		return f.Err
	}
	return f.MetadataStore.UpsertTag(ctx, creatorID, name)
}
