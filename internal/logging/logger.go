// Package logging wires zerolog for the shell and its CLI commands.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileName = "atom.log"
	logDirPerm  = 0o755

	defaultURLMaxLen = 60
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig controls the rotating log file.
type FileConfig struct {
	Enabled    bool
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	// WriteToStderr keeps stderr output alongside the file. The terminal
	// shell turns this off so log lines don't tear the UI.
	WriteToStderr bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return newWithWriter(cfg, formatWriter(cfg, os.Stderr))
}

// NewWithFile creates a logger that also (or only) writes to a rotating file.
// The returned cleanup closes the file; it is never nil.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	writers := make([]io.Writer, 0, 2)
	cleanup := func() {}

	if fileCfg.WriteToStderr {
		writers = append(writers, formatWriter(cfg, os.Stderr))
	}

	// A missing log dir drops the file sink but keeps the other writers.
	var fileErr error
	if fileCfg.Enabled && fileCfg.Dir != "" {
		fileErr = os.MkdirAll(fileCfg.Dir, logDirPerm)
	}
	if fileCfg.Enabled && fileCfg.Dir != "" && fileErr == nil {
		rotator := &lumberjack.Logger{
			Filename:   filepath.Join(fileCfg.Dir, logFileName),
			MaxSize:    fileCfg.MaxSizeMB,
			MaxBackups: fileCfg.MaxBackups,
			MaxAge:     fileCfg.MaxAgeDays,
			Compress:   true,
		}
		// Files always get JSON.
		writers = append(writers, rotator)
		cleanup = func() { _ = rotator.Close() }
	}

	if len(writers) == 0 {
		return zerolog.Nop(), cleanup, fileErr
	}

	return newWithWriter(cfg, zerolog.MultiLevelWriter(writers...)), cleanup, fileErr
}

// NewFromEnv creates a logger based on environment variables
// ATOM_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// ATOM_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return New(configFromValues(os.Getenv("ATOM_LOG_LEVEL"), os.Getenv("ATOM_LOG_FORMAT")))
}

// NewFromConfigValues builds a stderr logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	return New(configFromValues(level, format))
}

// ParseLevel maps a config string to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func configFromValues(level, format string) Config {
	cfg := DefaultConfig()
	if level != "" {
		cfg.Level = ParseLevel(level)
	}
	switch format {
	case "json", "console":
		cfg.Format = format
	}
	return cfg
}

func formatWriter(cfg Config, out io.Writer) io.Writer {
	if cfg.Format == "json" {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: cfg.TimeFormat,
	}
}

func newWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}
