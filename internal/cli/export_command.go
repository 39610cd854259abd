package cli

import (
	"context"
	"fmt"

	"work-tracker/internal/store"
)

// ExportCommand handles the export command
type ExportCommand struct {
	app          *App
	errorHandler *ErrorHandler
	format       string
	out          string
}

// NewExportCommand creates an export command handler writing format to out. An
// empty out writes <project>.<ext> in the working directory.
func NewExportCommand(app *App, format, out string) *ExportCommand {
	return &ExportCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
		format:       format,
		out:          out,
	}
}

// Execute renders the current daily table in another format
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	renderer, err := store.RendererByName(c.format)
	if err != nil {
		return c.errorHandler.Handle("export", err)
	}

	path := c.out
	if path == "" {
		path = store.FileName(c.app.config.Project.Name, renderer.Extension())
	}

	container, err := c.app.services()
	if err != nil {
		return c.errorHandler.Handle("export", err)
	}
	defer container.Close()

	if path == container.Tables.Path() {
		return c.errorHandler.Handle("export", fmt.Errorf("%s is the daily table itself", path))
	}

	if err := container.Tracker.Export(renderer, path); err != nil {
		return c.errorHandler.Handle("export", err)
	}

	fmt.Fprintf(c.app.out, "Exported %s to %s\n", container.Tables.Path(), path)
	return nil
}
