// Package timer tracks a single work session through its running and paused
// states and turns it into a SessionRecord on commit.
//
// A Timer is owned by one caller and is not safe for concurrent use. The live
// display polls Elapsed from the same event loop that issues transitions.
package timer

import (
	"time"

	"work-tracker/internal/domain"
	"work-tracker/internal/errors"
)

// State is the lifecycle state of a Timer.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

// String returns the state name used in messages
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Config holds what a Timer needs to stamp the records it commits.
type Config struct {
	Project string
	Layouts domain.Layouts
	// Now defaults to time.Now.
	Now func() time.Time
}

// Timer is the session state machine. The zero value is not usable; call New.
type Timer struct {
	project string
	layouts domain.Layouts
	now     func() time.Time

	startedAt        time.Time
	running          bool
	paused           bool
	pausedAt         time.Time
	accumulatedPause time.Duration
}

// New returns an idle Timer.
func New(cfg Config) *Timer {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	layouts := cfg.Layouts
	if layouts.Date == "" {
		layouts.Date = domain.DefaultLayouts.Date
	}
	if layouts.Clock == "" {
		layouts.Clock = domain.DefaultLayouts.Clock
	}
	return &Timer{
		project: cfg.Project,
		layouts: layouts,
		now:     now,
	}
}

// Project returns the label stamped on committed records.
func (t *Timer) Project() string {
	return t.project
}

// State reports the current lifecycle state.
func (t *Timer) State() State {
	switch {
	case t.running && t.paused:
		return StatePaused
	case t.running:
		return StateRunning
	default:
		return StateIdle
	}
}

// StartedAt returns when the current run began, or the zero time when idle.
func (t *Timer) StartedAt() time.Time {
	if !t.running {
		return time.Time{}
	}
	return t.startedAt
}

// Start begins a fresh run from any state, discarding the current one.
func (t *Timer) Start() {
	t.startedAt = t.now()
	t.running = true
	t.paused = false
	t.pausedAt = time.Time{}
	t.accumulatedPause = 0
}

// Pause freezes elapsed time. It fails unless the timer is running and not paused.
func (t *Timer) Pause() error {
	if state := t.State(); state != StateRunning {
		return errors.NewInvalidTimerStateError("pause", state.String())
	}
	t.pausedAt = t.now()
	t.paused = true
	return nil
}

// Resume continues a paused run. The pause interval is excluded from elapsed time.
func (t *Timer) Resume() error {
	if state := t.State(); state != StatePaused {
		return errors.NewInvalidTimerStateError("resume", state.String())
	}
	if gap := t.now().Sub(t.pausedAt); gap > 0 {
		t.accumulatedPause += gap
	}
	t.paused = false
	t.pausedAt = time.Time{}
	return nil
}

// Toggle pauses a running timer or resumes a paused one and returns the new state.
func (t *Timer) Toggle() (State, error) {
	var err error
	switch t.State() {
	case StateRunning:
		err = t.Pause()
	case StatePaused:
		err = t.Resume()
	default:
		err = errors.NewInvalidTimerStateError("pause or resume", StateIdle.String())
	}
	return t.State(), err
}

// Elapsed returns active milliseconds in the current run, net of pauses. It is
// zero when idle and never negative.
func (t *Timer) Elapsed() int64 {
	if !t.running {
		return 0
	}
	return t.elapsedAt(t.now())
}

func (t *Timer) elapsedAt(now time.Time) int64 {
	active := now.Sub(t.startedAt) - t.accumulatedPause
	if t.paused {
		active -= now.Sub(t.pausedAt)
	}
	if active < 0 {
		return 0
	}
	return active.Milliseconds()
}

// Commit ends the current run and returns its record, then immediately starts a
// new run. Tracking is continuous: a successful Commit always leaves the timer
// running. Committing while paused counts time up to the pause.
func (t *Timer) Commit() (domain.SessionRecord, error) {
	if !t.running {
		return domain.SessionRecord{}, errors.NewInvalidTimerStateError("commit", StateIdle.String())
	}

	end := t.now()
	record := domain.NewSessionRecord(t.project, t.startedAt, end, t.elapsedAt(end), t.layouts)

	t.startedAt = end
	t.paused = false
	t.pausedAt = time.Time{}
	t.accumulatedPause = 0
	return record, nil
}

// Stop discards the current run without producing a record.
func (t *Timer) Stop() {
	t.running = false
	t.paused = false
	t.pausedAt = time.Time{}
	t.accumulatedPause = 0
	t.startedAt = time.Time{}
}
