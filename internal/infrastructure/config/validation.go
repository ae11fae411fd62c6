package config

import (
	"fmt"
	neturl "net/url"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateAddresses(config)...)
	validationErrors = append(validationErrors, validateHistory(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validatePageHost(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateAddresses(config *Config) []string {
	var validationErrors []string
	if !isHTTPURL(config.DefaultStartURL) {
		validationErrors = append(validationErrors, "default_start_url must be an absolute http or https URL")
	}
	if !isHTTPURL(config.SearchEngine) {
		validationErrors = append(validationErrors, "search_engine must be an absolute http or https URL prefix")
	}
	return validationErrors
}

func isHTTPURL(raw string) bool {
	u, err := neturl.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func validateHistory(config *Config) []string {
	var validationErrors []string
	if config.History.MaxEntries < 1 || config.History.MaxEntries > 200 {
		validationErrors = append(validationErrors, "history.max_entries must be between 1 and 200")
	}
	if config.History.DisplayLimit < 1 || config.History.DisplayLimit > 200 {
		validationErrors = append(validationErrors, "history.display_limit must be between 1 and 200")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	switch config.Appearance.DefaultTheme {
	case "dark", "light":
	default:
		validationErrors = append(validationErrors, "appearance.default_theme must be dark or light")
	}
	validationErrors = append(validationErrors, validatePalette("appearance.dark_palette", config.Appearance.DarkPalette)...)
	validationErrors = append(validationErrors, validatePalette("appearance.light_palette", config.Appearance.LightPalette)...)
	return validationErrors
}

func validatePalette(prefix string, p ColorPalette) []string {
	var validationErrors []string
	fields := []struct{ name, value string }{
		{"background", p.Background},
		{"surface", p.Surface},
		{"text", p.Text},
		{"muted", p.Muted},
		{"accent", p.Accent},
		{"border", p.Border},
	}
	for _, f := range fields {
		if !hexColorPattern.MatchString(f.value) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.%s must be a #rrggbb color, got %q", prefix, f.name, f.value))
		}
	}
	return validationErrors
}

func validatePageHost(config *Config) []string {
	var validationErrors []string
	switch config.PageHost.Kind {
	case PageHostHeadless, PageHostChromium:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("page_host.kind must be %s or %s, got %q", PageHostHeadless, PageHostChromium, config.PageHost.Kind))
	}
	if config.PageHost.TimeoutMs < 1 {
		validationErrors = append(validationErrors, "page_host.timeout_ms must be positive")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if config.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(config.Logging.Level); err != nil {
			validationErrors = append(validationErrors,
				fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled, got %q", config.Logging.Level))
		}
	}
	switch config.Logging.Format {
	case "", "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be positive")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}
