package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultProjectName is used when no project name can be derived.
const DefaultProjectName = "unknown-project"

// Raw log backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds all configuration options for the work tracker
type Config struct {
	Storage     StorageConfig
	Project     ProjectConfig
	Time        TimeConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// StorageConfig holds where and how the two logs are written
type StorageConfig struct {
	Dir            string `env:"WT_STORAGE_DIR"`
	RawLogFilename string `env:"WT_RAW_LOG_FILENAME"`
	RawLogBackend  string `env:"WT_RAW_LOG_BACKEND"`
	TableFormat    string `env:"WT_TABLE_FORMAT"`
	DirPermissions uint32 `env:"WT_STORAGE_DIR_PERMISSIONS"`
}

// ProjectConfig holds the tracked project
type ProjectConfig struct {
	Name          string `env:"WT_PROJECT"`
	MaxNameLength int    `env:"WT_PROJECT_MAX_NAME_LENGTH"`
}

// TimeConfig holds the layouts used for the display strings of a record
type TimeConfig struct {
	DateLayout      string `env:"WT_DATE_LAYOUT"`
	ClockLayout     string `env:"WT_CLOCK_LAYOUT"`
	GeneratedLayout string `env:"WT_GENERATED_LAYOUT"`
}

// DisplayConfig holds display configuration
type DisplayConfig struct {
	Title           string        `env:"WT_TITLE"`
	RefreshInterval time.Duration `env:"WT_REFRESH_INTERVAL"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout    time.Duration `env:"WT_APP_TIMEOUT"`
	Verbose    bool          `env:"WT_APP_VERBOSE"`
	SaveOnQuit bool          `env:"WT_SAVE_ON_QUIT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Storage: StorageConfig{
			Dir:            filepath.Join(homeDir, ".wt"),
			RawLogFilename: "work-logs.json",
			RawLogBackend:  BackendJSON,
			TableFormat:    "xlsx",
			DirPermissions: 0755,
		},
		Project: ProjectConfig{
			Name:          DefaultProject(),
			MaxNameLength: 100,
		},
		Time: TimeConfig{
			DateLayout:      "02/01/2006",
			ClockLayout:     "15:04:05",
			GeneratedLayout: "02/01/2006 15:04:05",
		},
		Display: DisplayConfig{
			Title:           "Time Tracker - Work Sessions Log",
			RefreshInterval: time.Second,
		},
		Application: ApplicationConfig{
			Timeout:    60 * time.Second,
			Verbose:    false,
			SaveOnQuit: true,
		},
	}
}

// DefaultProject names the project after the working directory
func DefaultProject() string {
	wd, err := os.Getwd()
	if err != nil {
		return DefaultProjectName
	}
	name := filepath.Base(wd)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return DefaultProjectName
	}
	return name
}

// GetRawLogPath returns the full path of the raw log for the configured backend
func (c *Config) GetRawLogPath() string {
	name := c.Storage.RawLogFilename
	if c.Storage.RawLogBackend == BackendSQLite {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".db"
	}
	return filepath.Join(c.Storage.Dir, name)
}

// GetJSONRawLogPath returns the path of the JSON raw log regardless of backend
func (c *Config) GetJSONRawLogPath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.RawLogFilename)
}

// GetTitle returns the table title for the configured project
func (c *Config) GetTitle() string {
	return c.Project.Name + " " + c.Display.Title
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("WT_STORAGE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("WT_RAW_LOG_FILENAME"); filename != "" {
		c.Storage.RawLogFilename = filename
	}
	if backend := os.Getenv("WT_RAW_LOG_BACKEND"); backend != "" {
		c.Storage.RawLogBackend = strings.ToLower(backend)
	}
	if format := os.Getenv("WT_TABLE_FORMAT"); format != "" {
		c.Storage.TableFormat = strings.ToLower(format)
	}
	if perms := os.Getenv("WT_STORAGE_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}

	// Project configuration
	if name := os.Getenv("WT_PROJECT"); name != "" {
		c.Project.Name = name
	}
	if maxLen := os.Getenv("WT_PROJECT_MAX_NAME_LENGTH"); maxLen != "" {
		c.Project.MaxNameLength = ParseIntWithFallback(maxLen, c.Project.MaxNameLength)
	}

	// Time configuration
	if layout := os.Getenv("WT_DATE_LAYOUT"); layout != "" {
		c.Time.DateLayout = layout
	}
	if layout := os.Getenv("WT_CLOCK_LAYOUT"); layout != "" {
		c.Time.ClockLayout = layout
	}
	if layout := os.Getenv("WT_GENERATED_LAYOUT"); layout != "" {
		c.Time.GeneratedLayout = layout
	}

	// Display configuration
	if title := os.Getenv("WT_TITLE"); title != "" {
		c.Display.Title = title
	}
	if interval := os.Getenv("WT_REFRESH_INTERVAL"); interval != "" {
		c.Display.RefreshInterval = ParseDurationWithFallback(interval, c.Display.RefreshInterval)
	}

	// Application configuration
	if timeout := os.Getenv("WT_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("WT_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}
	if save := os.Getenv("WT_SAVE_ON_QUIT"); save != "" {
		c.Application.SaveOnQuit = ParseBoolWithFallback(save, c.Application.SaveOnQuit)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	if c.Storage.RawLogFilename == "" {
		return &ConfigError{Field: "storage.raw_log_filename", Message: "raw log filename cannot be empty"}
	}
	if c.Storage.RawLogBackend != BackendJSON && c.Storage.RawLogBackend != BackendSQLite {
		return &ConfigError{Field: "storage.raw_log_backend", Message: "raw log backend must be json or sqlite"}
	}
	if !isTableFormat(c.Storage.TableFormat) {
		return &ConfigError{Field: "storage.table_format", Message: "table format must be one of " + strings.Join(TableFormats, ", ")}
	}

	// Validate project configuration
	if strings.TrimSpace(c.Project.Name) == "" {
		return &ConfigError{Field: "project.name", Message: "project name cannot be empty"}
	}
	if c.Project.MaxNameLength < 1 {
		return &ConfigError{Field: "project.max_name_length", Message: "maximum project name length must be at least 1"}
	}

	// Validate time configuration
	if c.Time.DateLayout == "" {
		return &ConfigError{Field: "time.date_layout", Message: "date layout cannot be empty"}
	}
	if c.Time.ClockLayout == "" {
		return &ConfigError{Field: "time.clock_layout", Message: "clock layout cannot be empty"}
	}
	if c.Time.GeneratedLayout == "" {
		return &ConfigError{Field: "time.generated_layout", Message: "generated layout cannot be empty"}
	}

	// Validate display configuration
	if c.Display.RefreshInterval < 100*time.Millisecond {
		return &ConfigError{Field: "display.refresh_interval", Message: "refresh interval must be at least 100ms"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// TableFormats lists the supported daily table formats
var TableFormats = []string{"xlsx", "csv", "json", "yaml"}

func isTableFormat(format string) bool {
	for _, f := range TableFormats {
		if f == format {
			return true
		}
	}
	return false
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
