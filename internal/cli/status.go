package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"work-tracker/internal/domain"
	"work-tracker/internal/duration"
	"work-tracker/internal/services"
	"work-tracker/internal/timer"
)

var (
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	pausedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true)
	idleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
)

const trackHelp = "p: pause/resume • s: save and restart • q: quit"

// StatusLine renders "⏱ HH:MM:SS (project)" followed by the timer state
func StatusLine(status services.Status) string {
	line := fmt.Sprintf("⏱ %s (%s)", duration.Encode(status.ElapsedMs), status.Project)

	switch status.State {
	case timer.StateRunning:
		line += "  " + runningStyle.Render("● Running")
	case timer.StatePaused:
		line += "  " + pausedStyle.Render("❚❚ Paused")
	default:
		line += "  " + idleStyle.Render("○ Stopped")
	}

	if status.Pending > 0 {
		line += "  " + errorStyle.Render(fmt.Sprintf("%d unsaved", status.Pending))
	}
	return line
}

func savedMessage(record domain.SessionRecord) string {
	return fmt.Sprintf("Saved %s (%s) on %s", record.Duration, record.Range(), record.Date)
}

func stateMessage(state timer.State) string {
	if state == timer.StatePaused {
		return "Paused"
	}
	return "Resumed"
}
