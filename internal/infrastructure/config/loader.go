package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/atom/internal/domain/url"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// ATOM_HISTORY_MAX_ENTRIES, ATOM_PAGE_HOST_KIND and friends come from AutomaticEnv.
	v.SetEnvPrefix("ATOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "ATOM_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind ATOM_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "ATOM_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind ATOM_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf("failed to create default config at %s: %w", configDir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.DefaultStartURL = strings.TrimSpace(config.DefaultStartURL)
	if config.DefaultStartURL == "" {
		config.DefaultStartURL = url.DefaultStartURL
	}
	config.SearchEngine = strings.TrimSpace(config.SearchEngine)
	if config.SearchEngine == "" {
		config.SearchEngine = url.DefaultSearchPrefix
	}

	if config.History.MaxEntries <= 0 {
		config.History.MaxEntries = defaultHistoryMaxEntries
	}
	if config.History.DisplayLimit <= 0 {
		config.History.DisplayLimit = defaultHistoryDisplayLimit
	}

	config.Appearance.DefaultTheme = strings.ToLower(strings.TrimSpace(config.Appearance.DefaultTheme))
	if config.Appearance.DefaultTheme != "light" {
		config.Appearance.DefaultTheme = "dark"
	}

	switch strings.ToLower(strings.TrimSpace(config.PageHost.Kind)) {
	case "", PageHostHeadless:
		config.PageHost.Kind = PageHostHeadless
	case PageHostChromium, "playwright":
		config.PageHost.Kind = PageHostChromium
	default:
		// left as-is so validation reports it
	}
	if config.PageHost.TimeoutMs <= 0 {
		config.PageHost.TimeoutMs = defaultPageHostTimeoutMs
	}
	config.PageHost.UserAgent = strings.TrimSpace(config.PageHost.UserAgent)

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.LogDir == "" {
		config.Logging.LogDir = getDefaultLogDir()
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to the active config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	path := m.viper.ConfigFileUsed()
	if path == "" {
		var err error
		if path, err = GetConfigFile(); err != nil {
			return fmt.Errorf("failed to get config file path: %w", err)
		}
	}
	if err := WriteConfigOrdered(cfg, path); err != nil {
		return err
	}

	// The watcher picks the write up on its own.
	if !m.watching {
		return m.reloadLocked()
	}
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	defaults := DefaultConfig()
	// Resolved at load time so the file stays portable.
	defaults.Database.Path = ""
	defaults.Logging.LogDir = ""
	return WriteConfigOrdered(defaults, configFile)
}

// InitFile writes the default configuration to the config path unless one
// already exists. It returns the path and whether a file was written.
func InitFile(force bool) (string, bool, error) {
	if err := EnsureDirectories(); err != nil {
		return "", false, fmt.Errorf("failed to ensure directories: %w", err)
	}
	configFile, err := GetConfigFile()
	if err != nil {
		return "", false, err
	}
	if _, statErr := os.Stat(configFile); statErr == nil && !force {
		return configFile, false, nil
	}

	defaults := DefaultConfig()
	defaults.Database.Path = ""
	defaults.Logging.LogDir = ""
	if err := WriteConfigOrdered(defaults, configFile); err != nil {
		return "", false, err
	}
	return configFile, true, nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("default_start_url", defaults.DefaultStartURL)
	m.viper.SetDefault("search_engine", defaults.SearchEngine)
	m.viper.SetDefault("database.path", "")

	m.setHistoryDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	m.setPageHostDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setHistoryDefaults(defaults *Config) {
	m.viper.SetDefault("history.max_entries", defaults.History.MaxEntries)
	m.viper.SetDefault("history.display_limit", defaults.History.DisplayLimit)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.default_theme", defaults.Appearance.DefaultTheme)
	setPaletteDefaults(m.viper, "appearance.dark_palette", defaults.Appearance.DarkPalette)
	setPaletteDefaults(m.viper, "appearance.light_palette", defaults.Appearance.LightPalette)
}

func setPaletteDefaults(v *viper.Viper, prefix string, p ColorPalette) {
	v.SetDefault(prefix+".background", p.Background)
	v.SetDefault(prefix+".surface", p.Surface)
	v.SetDefault(prefix+".text", p.Text)
	v.SetDefault(prefix+".muted", p.Muted)
	v.SetDefault(prefix+".accent", p.Accent)
	v.SetDefault(prefix+".border", p.Border)
}

func (m *Manager) setPageHostDefaults(defaults *Config) {
	m.viper.SetDefault("page_host.kind", defaults.PageHost.Kind)
	m.viper.SetDefault("page_host.headless", defaults.PageHost.Headless)
	m.viper.SetDefault("page_host.timeout_ms", defaults.PageHost.TimeoutMs)
	m.viper.SetDefault("page_host.user_agent", defaults.PageHost.UserAgent)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", "")
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
}
