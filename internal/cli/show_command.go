package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"work-tracker/internal/domain"
	"work-tracker/internal/duration"
	"work-tracker/internal/errors"
)

// ShowCommand handles the show command
type ShowCommand struct {
	app          *App
	errorHandler *ErrorHandler
	from, to     string
}

// NewShowCommand creates a show command handler. With from or to set, the table
// is folded from the raw log sessions in that date range instead of read from
// the table file.
func NewShowCommand(app *App, from, to string) *ShowCommand {
	return &ShowCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
		from:         from,
		to:           to,
	}
}

// Execute prints the daily table of the configured project
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	from, err := c.parseDay("from", c.from)
	if err != nil {
		return c.errorHandler.Handle("show daily table", err)
	}
	to, err := c.parseDay("to", c.to)
	if err != nil {
		return c.errorHandler.Handle("show daily table", err)
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return c.errorHandler.Handle("show daily table",
			errors.NewInvalidInputError("to", c.to, "must not be before --from"))
	}

	container, err := c.app.services()
	if err != nil {
		return c.errorHandler.Handle("show daily table", err)
	}
	defer container.Close()

	ranged := c.from != "" || c.to != ""
	var records []domain.DailyRecord
	if ranged {
		records, err = container.Tracker.Report(ctx, from, to)
	} else {
		records, err = container.Tracker.Table()
	}
	if err != nil {
		return c.errorHandler.Handle("read daily table", err)
	}

	out := c.app.out
	if len(records) == 0 {
		if ranged {
			fmt.Fprintf(out, "No work sessions recorded for %s %s.\n", c.app.config.Project.Name, c.rangeLabel())
			return nil
		}
		fmt.Fprintf(out, "No work sessions recorded for %s yet.\n", c.app.config.Project.Name)
		return nil
	}

	fmt.Fprintln(out, titleStyle.Render(c.app.config.GetTitle()))
	fmt.Fprintln(out, renderTable(records))
	fmt.Fprintf(out, "Total: %s over %d day(s)\n", duration.Encode(totalMs(records)), len(records))
	return nil
}

// parseDay parses a --from or --to value with the configured date layout. An
// empty value is the zero time.
func (c *ShowCommand) parseDay(flag, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	day, ok := domain.ParseDay(value, c.app.config.Time.DateLayout)
	if !ok {
		return time.Time{}, errors.NewInvalidInputError(flag, value,
			fmt.Sprintf("expected a date like %s", timeNow().Format(c.app.config.Time.DateLayout)))
	}
	return day, nil
}

func (c *ShowCommand) rangeLabel() string {
	switch {
	case c.from != "" && c.to != "":
		return fmt.Sprintf("from %s to %s", c.from, c.to)
	case c.from != "":
		return "since " + c.from
	default:
		return "until " + c.to
	}
}

func renderTable(records []domain.DailyRecord) string {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, record.Row())
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(domain.Columns...).
		Rows(rows...).
		Render()
}

// totalMs sums the daily totals, skipping ones that cannot be decoded
func totalMs(records []domain.DailyRecord) int64 {
	var total int64
	for _, record := range records {
		if ms, err := record.TotalMs(); err == nil {
			total += ms
		}
	}
	return total
}
