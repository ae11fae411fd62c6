package config

import "github.com/bnema/atom/internal/domain/url"

// Default configuration constants
const (
	defaultHistoryMaxEntries   = 200
	defaultHistoryDisplayLimit = 50
	defaultPageHostTimeoutMs   = 15000
	defaultLogMaxSizeMB        = 10
	defaultLogMaxBackups       = 3
	defaultLogMaxAgeDays       = 7
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for atom.
func DefaultConfig() *Config {
	return &Config{
		DefaultStartURL: url.DefaultStartURL,
		SearchEngine:    url.DefaultSearchPrefix,
		Database: DatabaseConfig{
			// Path is set dynamically in Load()
		},
		History: HistoryConfig{
			MaxEntries:   defaultHistoryMaxEntries,
			DisplayLimit: defaultHistoryDisplayLimit,
		},
		Appearance: AppearanceConfig{
			DefaultTheme: "dark",
			DarkPalette: ColorPalette{
				Background: "#0a0a0b",
				Surface:    "#18181b",
				Text:       "#fafafa",
				Muted:      "#a1a1aa",
				Accent:     "#4ade80",
				Border:     "#3f3f46",
			},
			LightPalette: ColorPalette{
				Background: "#fafafa",
				Surface:    "#f4f4f5",
				Text:       "#18181b",
				Muted:      "#71717a",
				Accent:     "#22c55e",
				Border:     "#d4d4d8",
			},
		},
		PageHost: PageHostConfig{
			Kind:      PageHostHeadless,
			Headless:  true,
			TimeoutMs: defaultPageHostTimeoutMs,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: true,
			LogDir:        getDefaultLogDir(),
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			MaxAgeDays:    defaultLogMaxAgeDays,
		},
	}
}
