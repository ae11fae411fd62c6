package logging

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" warn ", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestTruncateURL(t *testing.T) {
	assert.Equal(t, "https://a.io", TruncateURL("https://a.io", 60))
	assert.Equal(t, "https://exa...", TruncateURL("https://example.com/long/path", 14))
	assert.Equal(t, "abcdef", TruncateURL("abcdef", 3))
}

func TestNewWithFile_WritesToRotatingFile(t *testing.T) {
	dir := t.TempDir()

	logger, cleanup, err := NewWithFile(
		Config{Level: zerolog.InfoLevel, Format: "json"},
		FileConfig{Enabled: true, Dir: dir, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1},
	)
	require.NoError(t, err)

	logger.Info().Str("tab_id", "t1").Msg("tab created")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tab_id":"t1"`)
	assert.Contains(t, string(data), "tab created")
}

func TestNewWithFile_NoSinksIsNop(t *testing.T) {
	logger, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{})
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, zerolog.Disabled, FromContext(ctx).GetLevel())

	ctx = WithContext(ctx, New(DefaultConfig()))
	ctx = WithComponent(ctx, "tabs")
	ctx = WithTabID(ctx, "tab-1")
	ctx = WithURL(ctx, "https://example.com")

	assert.Equal(t, zerolog.InfoLevel, FromContext(ctx).GetLevel())
}

func TestNewWithFile_UnwritableDirKeepsStderr(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	logger, cleanup, err := NewWithFile(
		Config{Level: zerolog.WarnLevel, Format: "json"},
		FileConfig{Enabled: true, Dir: filepath.Join(blocker, "logs"), WriteToStderr: true},
	)
	defer cleanup()

	require.Error(t, err)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}
