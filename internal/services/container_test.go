package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"work-tracker/internal/config"
	"work-tracker/internal/domain"
)

func TestNewServiceContainer(t *testing.T) {
	for _, backend := range []string{config.BackendJSON, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			cfg := config.NewConfig()
			cfg.Storage.Dir = filepath.Join(t.TempDir(), "wt")
			cfg.Storage.RawLogBackend = backend
			cfg.Storage.TableFormat = "yaml"
			cfg.Project.Name = "demo"

			clock := &fakeClock{now: time.Date(2025, 3, 7, 9, 0, 0, 0, time.Local)}
			container, err := NewServiceContainer(cfg, clock.Now)
			require.NoError(t, err)
			defer container.Close()

			ctx := context.Background()
			container.Tracker.Start()
			clock.Advance(90 * time.Second)
			record, err := container.Tracker.CommitAndRestart(ctx)
			require.NoError(t, err)
			assert.Equal(t, "00:01:30", record.Duration)

			records, err := container.RawLog.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, []domain.SessionRecord{record}, records)

			assert.Equal(t, filepath.Join(cfg.Storage.Dir, "demo.yaml"), container.Tables.Path())
			table, err := container.Tracker.Table()
			require.NoError(t, err)
			require.Len(t, table, 1)
			assert.Equal(t, "00:01:30", table[0].TotalDuration)

			day := time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)
			report, err := container.Tracker.Report(ctx, day, day)
			require.NoError(t, err)
			assert.Equal(t, table, report)

			report, err = container.Tracker.Report(ctx, day.AddDate(0, 0, 1), time.Time{})
			require.NoError(t, err)
			assert.Empty(t, report)
		})
	}
}

func TestNewServiceContainer_InvalidProject(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Storage.Dir = t.TempDir()
	cfg.Project.Name = "bad/name"

	_, err := NewServiceContainer(cfg, nil)
	assert.Error(t, err)
}
