package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "work-logs.json", cfg.Storage.RawLogFilename)
	assert.Equal(t, BackendJSON, cfg.Storage.RawLogBackend)
	assert.Equal(t, "xlsx", cfg.Storage.TableFormat)
	assert.Equal(t, uint32(0755), cfg.Storage.DirPermissions)
	assert.Equal(t, ".wt", filepath.Base(cfg.Storage.Dir))
	assert.NotEmpty(t, cfg.Project.Name)
	assert.Equal(t, "02/01/2006", cfg.Time.DateLayout)
	assert.Equal(t, "15:04:05", cfg.Time.ClockLayout)
	assert.Equal(t, time.Second, cfg.Display.RefreshInterval)
	assert.True(t, cfg.Application.SaveOnQuit)
	require.NoError(t, cfg.Validate())
}

func TestConfig_GetRawLogPath(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Dir = "/data"

	assert.Equal(t, filepath.Join("/data", "work-logs.json"), cfg.GetRawLogPath())

	cfg.Storage.RawLogBackend = BackendSQLite
	assert.Equal(t, filepath.Join("/data", "work-logs.db"), cfg.GetRawLogPath())
	assert.Equal(t, filepath.Join("/data", "work-logs.json"), cfg.GetJSONRawLogPath())
}

func TestConfig_GetTitle(t *testing.T) {
	cfg := NewConfig()
	cfg.Project.Name = "demo"

	assert.Equal(t, "demo Time Tracker - Work Sessions Log", cfg.GetTitle())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("WT_STORAGE_DIR", "/tmp/wt")
	t.Setenv("WT_RAW_LOG_BACKEND", "SQLite")
	t.Setenv("WT_TABLE_FORMAT", "csv")
	t.Setenv("WT_STORAGE_DIR_PERMISSIONS", "700")
	t.Setenv("WT_PROJECT", "demo")
	t.Setenv("WT_DATE_LAYOUT", "2006-01-02")
	t.Setenv("WT_REFRESH_INTERVAL", "500ms")
	t.Setenv("WT_SAVE_ON_QUIT", "false")
	t.Setenv("WT_APP_TIMEOUT", "not-a-duration")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/wt", cfg.Storage.Dir)
	assert.Equal(t, BackendSQLite, cfg.Storage.RawLogBackend)
	assert.Equal(t, "csv", cfg.Storage.TableFormat)
	assert.Equal(t, uint32(0700), cfg.Storage.DirPermissions)
	assert.Equal(t, "demo", cfg.Project.Name)
	assert.Equal(t, "2006-01-02", cfg.Time.DateLayout)
	assert.Equal(t, 500*time.Millisecond, cfg.Display.RefreshInterval)
	assert.False(t, cfg.Application.SaveOnQuit)
	assert.Equal(t, 60*time.Second, cfg.Application.Timeout, "invalid values keep the default")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"empty dir", func(c *Config) { c.Storage.Dir = "" }, "storage.dir"},
		{"empty raw log filename", func(c *Config) { c.Storage.RawLogFilename = "" }, "storage.raw_log_filename"},
		{"unknown backend", func(c *Config) { c.Storage.RawLogBackend = "postgres" }, "storage.raw_log_backend"},
		{"unknown table format", func(c *Config) { c.Storage.TableFormat = "docx" }, "storage.table_format"},
		{"blank project", func(c *Config) { c.Project.Name = "  " }, "project.name"},
		{"zero max name length", func(c *Config) { c.Project.MaxNameLength = 0 }, "project.max_name_length"},
		{"empty date layout", func(c *Config) { c.Time.DateLayout = "" }, "time.date_layout"},
		{"empty clock layout", func(c *Config) { c.Time.ClockLayout = "" }, "time.clock_layout"},
		{"fast refresh", func(c *Config) { c.Display.RefreshInterval = time.Millisecond }, "display.refresh_interval"},
		{"zero timeout", func(c *Config) { c.Application.Timeout = 0 }, "application.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var configErr *ConfigError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, tt.field, configErr.Field)
		})
	}
}

func TestDefaultProject(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-project")
	require.NoError(t, mkdir(dir))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	assert.Equal(t, "my-project", DefaultProject())
}
