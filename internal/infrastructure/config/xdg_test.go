package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetXDGDirs_RespectsEnv(t *testing.T) {
	root := isolate(t)

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "config", appName), dirs.ConfigHome)
	assert.Equal(t, filepath.Join(root, "data", appName), dirs.DataHome)
	assert.Equal(t, filepath.Join(root, "state", appName), dirs.StateHome)
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	isolate(t)
	t.Setenv("ENV", "dev")

	cwd, err := os.Getwd()
	require.NoError(t, err)

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, ".dev", appName), dirs.ConfigHome)
	assert.Equal(t, dirs.ConfigHome, dirs.DataHome)
}

func TestEnsureDirectories(t *testing.T) {
	isolate(t)
	require.NoError(t, EnsureDirectories())

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.DirExists(t, dirs.ConfigHome)
	assert.DirExists(t, dirs.DataHome)
	assert.DirExists(t, dirs.StateHome)
}
