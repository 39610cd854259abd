package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"work-tracker/internal/config"
)

// FilesCommand handles the files command
type FilesCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewFilesCommand creates a new files command handler
func NewFilesCommand(app *App) *FilesCommand {
	return &FilesCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute prints the storage directory and the two files the tracker owns. It
// does not create anything.
func (c *FilesCommand) Execute(ctx context.Context, args []string) error {
	cfg := c.app.config
	tables, err := config.CreateTableStore(cfg)
	if err != nil {
		return c.errorHandler.Handle("list files", err)
	}

	out := c.app.out
	fmt.Fprintf(out, "Storage directory: %s\n", cfg.Storage.Dir)
	c.describe("Raw log", cfg.GetRawLogPath())
	c.describe("Daily table", tables.Path())
	return nil
}

func (c *FilesCommand) describe(label, path string) {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(c.app.out, "  %-12s %s (not created yet)\n", label+":", path)
		return
	}
	fmt.Fprintf(c.app.out, "  %-12s %s (%s, modified %s)\n", label+":", path,
		humanize.Bytes(uint64(info.Size())), humanize.RelTime(info.ModTime(), timeNow(), "ago", "from now"))
}
