package cli

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"work-tracker/internal/services"
)

type tickMsg time.Time

// trackModel is the bubbletea model of "wt track". Key presses and refresh ticks
// go through the same Update loop, so a tick never interleaves with a save.
type trackModel struct {
	ctx      context.Context
	tracker  services.TrackerService
	errors   *ErrorHandler
	interval time.Duration

	message  string
	failed   bool
	quitting bool
}

func newTrackModel(ctx context.Context, tracker services.TrackerService, interval time.Duration) trackModel {
	return trackModel{
		ctx:      ctx,
		tracker:  tracker,
		errors:   NewErrorHandler(),
		interval: interval,
	}
}

func (m trackModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m trackModel) Init() tea.Cmd {
	return m.tick()
}

func (m trackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "p", " ":
			state, err := m.tracker.PauseResume()
			m.report(stateMessage(state), err)
		case "s":
			record, err := m.tracker.CommitAndRestart(m.ctx)
			m.report(savedMessage(record), err)
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	case tickMsg:
		return m, m.tick()
	}
	return m, nil
}

func (m *trackModel) report(message string, err error) {
	if err != nil {
		m.message = m.errors.HandleSimple(err).Error()
		m.failed = true
		return
	}
	m.message = message
	m.failed = false
}

func (m trackModel) View() string {
	if m.quitting {
		return ""
	}

	view := StatusLine(m.tracker.Status()) + "\n"
	if m.message != "" {
		if m.failed {
			view += errorStyle.Render(m.message) + "\n"
		} else {
			view += m.message + "\n"
		}
	}
	return view + helpStyle.Render(trackHelp) + "\n"
}
