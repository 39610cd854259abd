package cli

import (
	"context"
	"fmt"
)

// RebuildCommand handles the rebuild command
type RebuildCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewRebuildCommand creates a new rebuild command handler
func NewRebuildCommand(app *App) *RebuildCommand {
	return &RebuildCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute rewrites the daily table from the raw log
func (c *RebuildCommand) Execute(ctx context.Context, args []string) error {
	container, err := c.app.services()
	if err != nil {
		return c.errorHandler.Handle("rebuild daily table", err)
	}
	defer container.Close()

	records, err := container.Tracker.Rebuild(ctx)
	if err != nil {
		return c.errorHandler.Handle("rebuild daily table", err)
	}

	fmt.Fprintf(c.app.out, "Rebuilt %s from %s: %d day(s)\n",
		container.Tables.Path(), container.RawLog.Path(), len(records))
	if c.app.config.Application.Verbose && len(records) > 0 {
		fmt.Fprintln(c.app.out, renderTable(records))
	}
	return nil
}
