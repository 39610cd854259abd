package cli

import (
	"context"
	"fmt"
	"os"

	"work-tracker/internal/config"
	"work-tracker/internal/errors"
	"work-tracker/internal/services"
	"work-tracker/internal/store"
	"work-tracker/internal/validation"
)

// ImportCommand handles the import command
type ImportCommand struct {
	app          *App
	errorHandler *ErrorHandler
	from         string
}

// NewImportCommand creates an import command handler reading the JSON raw log at
// from, or the configured one when from is empty.
func NewImportCommand(app *App, from string) *ImportCommand {
	return &ImportCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
		from:         from,
	}
}

// Execute copies the JSON raw log into the SQLite raw log
func (c *ImportCommand) Execute(ctx context.Context, args []string) error {
	cfg := c.app.config
	source := config.CreateJSONRawLog(cfg)
	if c.from != "" {
		source = store.NewJSONRawLog(c.from, os.FileMode(cfg.Storage.DirPermissions))
	}
	if _, err := os.Stat(source.Path()); os.IsNotExist(err) {
		return c.errorHandler.Handle("import", errors.NewNotFoundError("raw log", source.Path()))
	}

	targetConfig := *cfg
	targetConfig.Storage.RawLogBackend = config.BackendSQLite
	target, closeTarget, err := config.CreateRawLog(&targetConfig)
	if err != nil {
		return c.errorHandler.Handle("import", err)
	}
	defer closeTarget()

	result, err := services.ImportRawLog(ctx, source, target, validation.NewValidatorWithConfig(cfg))
	if err != nil {
		return c.errorHandler.Handle("import", err)
	}

	fmt.Fprintf(c.app.out, "Imported %d session(s) from %s into %s", result.Imported, result.Source, result.Target)
	if result.Skipped > 0 {
		fmt.Fprintf(c.app.out, " (%d skipped)", result.Skipped)
	}
	fmt.Fprintln(c.app.out)

	if cfg.Storage.RawLogBackend != config.BackendSQLite {
		fmt.Fprintf(c.app.out, "Set WT_RAW_LOG_BACKEND=%s or pass --backend %s to track into it.\n",
			config.BackendSQLite, config.BackendSQLite)
	}
	return nil
}
