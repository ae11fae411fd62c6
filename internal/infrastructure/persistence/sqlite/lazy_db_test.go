package sqlite_test

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/atom/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_NotInitializedByDefault(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "atom.db"))

	assert.False(t, lazy.IsInitialized())
	assert.NoError(t, lazy.Close())
}

func TestLazyDB_InitializesOnFirstAccess(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "nested", "atom.db"))

	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	require.NotNil(t, db)
	assert.True(t, lazy.IsInitialized())

	require.NoError(t, lazy.Close())
}

func TestLazyDB_ConcurrentAccessReturnsSameConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "atom.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	first, err := lazy.DB(ctx)
	require.NoError(t, err)

	const goroutines = 8
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			db, err := lazy.DB(ctx)
			assert.NoError(t, err)
			assert.Same(t, first, db)
		}()
	}
	wg.Wait()
}

func TestLazyDB_EmptyPathFails(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(ctx)
	require.Error(t, err)
	assert.False(t, lazy.IsInitialized())
}

func TestLazyKeyValueStore_OpensOnFirstUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "atom.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	store := sqlite.NewLazyKeyValueStore(lazy)
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, store.Set(ctx, "atom_bookmarks_v1", `[]`))
	assert.True(t, lazy.IsInitialized())

	value, found, err := store.Get(ctx, "atom_bookmarks_v1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, value)
}

func TestLazyKeyValueStore_PropagatesOpenError(t *testing.T) {
	ctx := testCtx()
	store := sqlite.NewLazyKeyValueStore(sqlite.NewLazyDB(""))

	_, _, err := store.Get(ctx, "atom_theme_v1")
	assert.Error(t, err)
	assert.Error(t, store.Set(ctx, "atom_theme_v1", `"dark"`))
}
