package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/atom/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/atom/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestKeyValueStore_RoundTrip(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "atom.db")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := sqlite.NewKeyValueStore(db)

	_, found, err := store.Get(ctx, "atom_theme_v1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "atom_theme_v1", `"light"`))
	require.NoError(t, store.Set(ctx, "atom_theme_v1", `"dark"`))

	value, found, err := store.Get(ctx, "atom_theme_v1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `"dark"`, value)
}

func TestKeyValueStore_SurvivesReopen(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "atom.db")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, sqlite.NewKeyValueStore(db).Set(ctx, "atom_bookmarks_v1", `[{"name":"Go","url":"https://go.dev"}]`))
	require.NoError(t, sqlite.Close(db))

	db, err = sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	value, found, err := sqlite.NewKeyValueStore(db).Get(ctx, "atom_bookmarks_v1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"name":"Go","url":"https://go.dev"}]`, value)

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, version)
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(testCtx(), "")
	assert.Error(t, err)
}
