package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/atom/internal/cli/styles"
	"github.com/bnema/atom/internal/domain/build"
	"github.com/bnema/atom/internal/domain/entity"
)

func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("ATOM_LOG_LEVEL", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

// run executes the command tree with fresh flag values and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	bookmarksJSON, bookmarkName = false, ""
	historyJSON, historyMax = false, 0
	configForce, configSchemaWrite = false, false
	private = false
	app = nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"1", 0, false},
		{"12", 11, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"two", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseIndex(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLimitHistory(t *testing.T) {
	entries := []entity.HistoryEntry{{URL: "a"}, {URL: "b"}, {URL: "c"}}

	assert.Len(t, limitHistory(entries, 2), 2)
	assert.Len(t, limitHistory(entries, 10), 3)
	assert.Len(t, limitHistory(entries, 0), 3)
}

func TestRenderBookmarks(t *testing.T) {
	theme := styles.NewTheme(nil)

	var empty bytes.Buffer
	require.NoError(t, renderBookmarks(&empty, theme, nil))
	assert.Contains(t, empty.String(), "no bookmarks yet")

	var out bytes.Buffer
	require.NoError(t, renderBookmarks(&out, theme, []entity.Bookmark{
		{Name: "Go", URL: "https://go.dev"},
		{Name: "Docs", URL: "https://pkg.go.dev"},
	}))
	assert.Contains(t, out.String(), "https://go.dev")
	assert.Contains(t, out.String(), "Docs")
}

func TestRenderHistory(t *testing.T) {
	theme := styles.NewTheme(nil)

	var out bytes.Buffer
	require.NoError(t, renderHistory(&out, theme, []entity.HistoryEntry{
		{URL: "https://example.com", Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)},
	}))
	assert.Contains(t, out.String(), "https://example.com")
	assert.Contains(t, out.String(), "2026-03-01 12:00")
}

func TestVersionCommand(t *testing.T) {
	isolate(t)
	SetBuildInfo(build.Info{Version: "1.2.3", Commit: "abc123", BuildDate: "today", GoVersion: "go1.25"})
	t.Cleanup(func() { SetBuildInfo(build.Info{}) })

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "atom 1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, build.RepoURL())
	assert.Nil(t, GetApp())
}

func TestConfigCommands(t *testing.T) {
	root := isolate(t)
	want := filepath.Join(root, "config", "atom", "config.toml")

	out, err := run(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out)

	out, err = run(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote default config")

	out, err = run(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")

	out, err = run(t, "config", "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote default config")

	out, err = run(t, "config", "schema")
	require.NoError(t, err)
	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Equal(t, "Atom Browser Configuration", schema["title"])

	out, err = run(t, "config", "schema", "--write")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(root, "config", "atom", "config.schema.json"))
	assert.FileExists(t, filepath.Join(root, "config", "atom", "config.schema.json"))
}

func TestBookmarksCommands(t *testing.T) {
	isolate(t)

	_, err := run(t, "bookmarks", "add", "https://go.dev", "--name", "Go")
	require.NoError(t, err)
	_, err = run(t, "bookmarks", "add", "https://example.com")
	require.NoError(t, err)

	out, err := run(t, "bookmarks", "list", "--json")
	require.NoError(t, err)
	var got []entity.Bookmark
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []entity.Bookmark{
		{Name: "Go", URL: "https://go.dev"},
		{Name: "https://example.com", URL: "https://example.com"},
	}, got)

	_, err = run(t, "bookmarks", "rm", "1")
	require.NoError(t, err)

	out, err = run(t, "bookmarks", "list", "--json")
	require.NoError(t, err)
	got = nil
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "https://example.com", got[0].URL)

	_, err = run(t, "bookmarks", "rm", "5")
	assert.Error(t, err)
}

func TestPrivateModeDoesNotPersist(t *testing.T) {
	isolate(t)

	_, err := run(t, "--private", "bookmarks", "add", "https://secret.example")
	require.NoError(t, err)

	out, err := run(t, "bookmarks", "list", "--json")
	require.NoError(t, err)
	var got []entity.Bookmark
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Empty(t, got)
}

func TestHistoryCommands(t *testing.T) {
	isolate(t)

	out, err := run(t, "history", "list", "--json")
	require.NoError(t, err)
	var items []HistoryItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Empty(t, items)

	out, err = run(t, "history", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "cleared 0 history entries")
}

func TestStatusCommand(t *testing.T) {
	isolate(t)

	_, err := run(t, "bookmarks", "add", "https://go.dev")
	require.NoError(t, err)

	out, err := run(t, "status")
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^config\s.*config\.toml$`, out)
	assert.Regexp(t, `(?m)^schema\s.*\b1$`, out)
	assert.Regexp(t, `(?m)^bookmarks\s.*\b1$`, out)
	assert.Regexp(t, `(?m)^history\s.*\b0$`, out)

	out, err = run(t, "--private", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "in memory (private mode)")
	assert.Regexp(t, `(?m)^database\s.*none$`, out)
}

func TestNeedsApp(t *testing.T) {
	assert.False(t, needsApp(versionCmd))
	assert.False(t, needsApp(configPathCmd))
	assert.True(t, needsApp(bookmarksListCmd))
	assert.True(t, needsApp(browseCmd))
	assert.True(t, needsApp(statusCmd))

	assert.True(t, isInteractive(rootCmd))
	assert.True(t, isInteractive(browseCmd))
	assert.False(t, isInteractive(historyListCmd))
}
