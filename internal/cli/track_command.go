package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"work-tracker/internal/services"
	"work-tracker/internal/timer"
)

// TrackCommand handles the track command
type TrackCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewTrackCommand creates a new track command handler
func NewTrackCommand(app *App) *TrackCommand {
	return &TrackCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute starts a session and tracks it until the user quits. A terminal gets
// the live status line; other input is read as one command per line.
func (c *TrackCommand) Execute(ctx context.Context, args []string) error {
	container, err := c.app.services()
	if err != nil {
		return c.errorHandler.Handle("start tracking", err)
	}
	defer container.Close()

	tracker := container.Tracker
	tracker.Start()

	if c.app.interactive() {
		err = c.runTUI(ctx, tracker)
	} else {
		err = c.runLines(ctx, tracker)
	}
	if err != nil {
		return err
	}

	return c.quit(ctx, tracker)
}

func (c *TrackCommand) runTUI(ctx context.Context, tracker services.TrackerService) error {
	model := newTrackModel(ctx, tracker, c.app.config.Display.RefreshInterval)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(c.app.in),
		tea.WithOutput(c.app.out),
	)
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}

// runLines reads p, s and q commands until q or end of input
func (c *TrackCommand) runLines(ctx context.Context, tracker services.TrackerService) error {
	out := c.app.out
	fmt.Fprintln(out, StatusLine(tracker.Status()))
	fmt.Fprintln(out, helpStyle.Render(trackHelp))

	scanner := bufio.NewScanner(c.app.in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "p", "pause", "resume":
			state, err := tracker.PauseResume()
			c.printResult(stateMessage(state), err)
		case "s", "save":
			record, err := tracker.CommitAndRestart(ctx)
			c.printResult(savedMessage(record), err)
		case "q", "quit", "exit":
			return nil
		case "", "status":
		default:
			fmt.Fprintf(out, "unknown command %q (%s)\n", scanner.Text(), trackHelp)
			continue
		}
		fmt.Fprintln(out, StatusLine(tracker.Status()))
	}
	return scanner.Err()
}

func (c *TrackCommand) printResult(message string, err error) {
	if err != nil {
		fmt.Fprintln(c.app.out, errorStyle.Render(c.errorHandler.HandleSimple(err).Error()))
		return
	}
	fmt.Fprintln(c.app.out, message)
}

// quit saves the running session when configured to and reports sessions that
// could not be saved. The timer is stopped either way.
func (c *TrackCommand) quit(ctx context.Context, tracker services.TrackerService) error {
	defer tracker.Discard()

	if c.app.config.Application.SaveOnQuit && tracker.Status().State != timer.StateIdle {
		record, err := tracker.CommitAndRestart(ctx)
		if err == nil {
			fmt.Fprintln(c.app.out, savedMessage(record))
			return nil
		}
		if tracker.Pending() == 0 {
			return c.errorHandler.Handle("save session", err)
		}
	}

	if pending := tracker.Pending(); pending > 0 {
		if err := tracker.Flush(ctx); err != nil {
			return c.errorHandler.Handle(fmt.Sprintf("save %d pending session(s)", pending), err)
		}
	}
	return nil
}
