package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config     *Config
	configFile string
}

// NewLoader creates a new configuration loader reading the default config file
func NewLoader() *Loader {
	return &Loader{
		config:     NewConfig(),
		configFile: DefaultConfigFilePath(),
	}
}

// WithConfigFile makes the loader read path instead of the default config file
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// DefaultConfigFilePath returns WT_CONFIG, or config.yaml in the user's config directory
func DefaultConfigFilePath() string {
	if path := os.Getenv("WT_CONFIG"); path != "" {
		return path
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, "wt", "config.yaml")
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file, if present
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.loadFile(); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// loadFile applies the keys present in the config file. A missing file is not an error.
func (l *Loader) loadFile() error {
	if l.configFile == "" {
		return nil
	}
	if _, err := os.Stat(l.configFile); os.IsNotExist(err) {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(l.configFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file %s: %w", l.configFile, err)
	}

	c := l.config
	if v.IsSet("storage.dir") {
		c.Storage.Dir = expandHome(v.GetString("storage.dir"))
	}
	if v.IsSet("storage.raw_log_filename") {
		c.Storage.RawLogFilename = v.GetString("storage.raw_log_filename")
	}
	if v.IsSet("storage.raw_log_backend") {
		c.Storage.RawLogBackend = strings.ToLower(v.GetString("storage.raw_log_backend"))
	}
	if v.IsSet("storage.table_format") {
		c.Storage.TableFormat = strings.ToLower(v.GetString("storage.table_format"))
	}
	if v.IsSet("storage.dir_permissions") {
		c.Storage.DirPermissions = ParseUint32WithFallback(v.GetString("storage.dir_permissions"), 8, c.Storage.DirPermissions)
	}
	if v.IsSet("project.name") {
		c.Project.Name = v.GetString("project.name")
	}
	if v.IsSet("project.max_name_length") {
		c.Project.MaxNameLength = v.GetInt("project.max_name_length")
	}
	if v.IsSet("time.date_layout") {
		c.Time.DateLayout = v.GetString("time.date_layout")
	}
	if v.IsSet("time.clock_layout") {
		c.Time.ClockLayout = v.GetString("time.clock_layout")
	}
	if v.IsSet("time.generated_layout") {
		c.Time.GeneratedLayout = v.GetString("time.generated_layout")
	}
	if v.IsSet("display.title") {
		c.Display.Title = v.GetString("display.title")
	}
	if v.IsSet("display.refresh_interval") {
		c.Display.RefreshInterval = v.GetDuration("display.refresh_interval")
	}
	if v.IsSet("application.timeout") {
		c.Application.Timeout = v.GetDuration("application.timeout")
	}
	if v.IsSet("application.verbose") {
		c.Application.Verbose = v.GetBool("application.verbose")
	}
	if v.IsSet("application.save_on_quit") {
		c.Application.SaveOnQuit = v.GetBool("application.save_on_quit")
	}

	return nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Storage overrides
	StorageDir     *string
	RawLogBackend  *string
	TableFormat    *string
	DirPermissions *uint32

	// Project overrides
	Project *string

	// Time overrides
	DateLayout  *string
	ClockLayout *string

	// Display overrides
	RefreshInterval *time.Duration

	// Application overrides
	Timeout    *time.Duration
	Verbose    *bool
	SaveOnQuit *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.StorageDir != nil {
		config.Storage.Dir = *overrides.StorageDir
	}
	if overrides.RawLogBackend != nil {
		config.Storage.RawLogBackend = strings.ToLower(*overrides.RawLogBackend)
	}
	if overrides.TableFormat != nil {
		config.Storage.TableFormat = strings.ToLower(*overrides.TableFormat)
	}
	if overrides.DirPermissions != nil {
		config.Storage.DirPermissions = *overrides.DirPermissions
	}

	if overrides.Project != nil {
		config.Project.Name = *overrides.Project
	}

	if overrides.DateLayout != nil {
		config.Time.DateLayout = *overrides.DateLayout
	}
	if overrides.ClockLayout != nil {
		config.Time.ClockLayout = *overrides.ClockLayout
	}

	if overrides.RefreshInterval != nil {
		config.Display.RefreshInterval = *overrides.RefreshInterval
	}

	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
	if overrides.SaveOnQuit != nil {
		config.Application.SaveOnQuit = *overrides.SaveOnQuit
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
