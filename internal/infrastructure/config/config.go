// Package config provides configuration management for atom with Viper integration.
package config

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Page host kinds.
const (
	PageHostHeadless = "headless"
	PageHostChromium = "chromium"
)

// Config represents the complete configuration for atom.
type Config struct {
	// DefaultStartURL opens for new tabs and blank input.
	DefaultStartURL string `mapstructure:"default_start_url" toml:"default_start_url" json:"default_start_url" jsonschema:"description=Address opened by new tabs and blank input,format=uri"`
	// SearchEngine is the prefix percent-encoded queries are appended to.
	SearchEngine string           `mapstructure:"search_engine" toml:"search_engine" json:"search_engine" jsonschema:"description=Search URL prefix the encoded query is appended to"`
	Database     DatabaseConfig   `mapstructure:"database" toml:"database" json:"database"`
	History      HistoryConfig    `mapstructure:"history" toml:"history" json:"history"`
	Appearance   AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	PageHost     PageHostConfig   `mapstructure:"page_host" toml:"page_host" json:"page_host"`
	Logging      LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
}

// DatabaseConfig holds side-store settings.
type DatabaseConfig struct {
	// Path of the SQLite file. Empty resolves to the XDG data directory.
	Path string `mapstructure:"path" toml:"path" json:"path" jsonschema:"description=SQLite file holding bookmarks and history and theme"`
}

// HistoryConfig holds history-related configuration.
type HistoryConfig struct {
	MaxEntries   int `mapstructure:"max_entries" toml:"max_entries" json:"max_entries" jsonschema:"minimum=1,maximum=200,default=200"`
	DisplayLimit int `mapstructure:"display_limit" toml:"display_limit" json:"display_limit" jsonschema:"minimum=1,maximum=200,default=50"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	// DefaultTheme applies until a theme is toggled and persisted.
	DefaultTheme string       `mapstructure:"default_theme" toml:"default_theme" json:"default_theme" jsonschema:"enum=dark,enum=light,default=dark"`
	DarkPalette  ColorPalette `mapstructure:"dark_palette" toml:"dark_palette" json:"dark_palette"`
	LightPalette ColorPalette `mapstructure:"light_palette" toml:"light_palette" json:"light_palette"`
}

// ColorPalette is one theme's colors, as #rrggbb.
type ColorPalette struct {
	Background string `mapstructure:"background" toml:"background" json:"background" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Surface    string `mapstructure:"surface" toml:"surface" json:"surface" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Text       string `mapstructure:"text" toml:"text" json:"text" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Muted      string `mapstructure:"muted" toml:"muted" json:"muted" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Accent     string `mapstructure:"accent" toml:"accent" json:"accent" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Border     string `mapstructure:"border" toml:"border" json:"border" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
}

// PageHostConfig selects and tunes the engine that hosts page views.
type PageHostConfig struct {
	Kind      string `mapstructure:"kind" toml:"kind" json:"kind" jsonschema:"enum=headless,enum=chromium,default=headless"`
	Headless  bool   `mapstructure:"headless" toml:"headless" json:"headless" jsonschema:"description=Run Chromium without a window"`
	TimeoutMs int    `mapstructure:"timeout_ms" toml:"timeout_ms" json:"timeout_ms" jsonschema:"minimum=1"`
	UserAgent string `mapstructure:"user_agent" toml:"user_agent" json:"user_agent"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays    int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
}
