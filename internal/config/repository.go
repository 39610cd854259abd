package config

import (
	"fmt"
	"os"

	"work-tracker/internal/domain"
	"work-tracker/internal/repository/sqlite"
	"work-tracker/internal/store"
)

// CreateRepository opens the sqlite session database at the configured raw log path
func CreateRepository(config *Config) (sqlite.Repository, error) {
	if err := os.MkdirAll(config.Storage.Dir, os.FileMode(config.Storage.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	repo, err := sqlite.New(config.GetRawLogPath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateRawLog creates the raw log for the configured backend. The returned func
// releases it and must be called when done.
func CreateRawLog(config *Config) (store.RawLog, func() error, error) {
	switch config.Storage.RawLogBackend {
	case BackendSQLite:
		repo, err := CreateRepository(config)
		if err != nil {
			return nil, nil, err
		}
		log := store.NewSQLiteRawLog(repo, domain.NewSessionMapper(config.Time.DateLayout), config.GetRawLogPath())
		return log, log.Close, nil
	default:
		log := store.NewJSONRawLog(config.GetRawLogPath(), os.FileMode(config.Storage.DirPermissions))
		if err := log.Ensure(); err != nil {
			return nil, nil, err
		}
		return log, func() error { return nil }, nil
	}
}

// CreateJSONRawLog creates the JSON raw log whatever the configured backend is
func CreateJSONRawLog(config *Config) *store.JSONRawLog {
	return store.NewJSONRawLog(config.GetJSONRawLogPath(), os.FileMode(config.Storage.DirPermissions))
}

// CreateTableStore creates the daily table store of the configured project
func CreateTableStore(config *Config) (*store.TableStore, error) {
	tableConfig, err := TableStoreConfig(config)
	if err != nil {
		return nil, err
	}
	return store.NewTableStore(tableConfig), nil
}

// TableStoreConfig maps the configuration onto a table store configuration
func TableStoreConfig(config *Config) (store.TableStoreConfig, error) {
	format, err := store.FormatByName(config.Storage.TableFormat)
	if err != nil {
		return store.TableStoreConfig{}, err
	}

	return store.TableStoreConfig{
		Dir:             config.Storage.Dir,
		Project:         config.Project.Name,
		Title:           config.GetTitle(),
		GeneratedLayout: config.Time.GeneratedLayout,
		DirPermissions:  os.FileMode(config.Storage.DirPermissions),
		Format:          format,
	}, nil
}
