package services

import (
	"context"
	"time"

	"work-tracker/internal/aggregate"
	"work-tracker/internal/domain"
	"work-tracker/internal/errors"
	"work-tracker/internal/logging"
	"work-tracker/internal/store"
	"work-tracker/internal/timer"
	"work-tracker/internal/validation"
)

var _ TrackerService = (*Tracker)(nil)

// TrackerConfig holds the collaborators of a Tracker
type TrackerConfig struct {
	Timer      *timer.Timer
	RawLog     store.RawLog
	Tables     *store.TableStore
	Aggregator *aggregate.Aggregator
	Validator  *validation.Validator
}

// pendingSave is a committed record not yet written to both views
type pendingSave struct {
	record     domain.SessionRecord
	rawSaved   bool
	tableSaved bool
}

// Tracker owns the session timer of one project and writes each committed
// session to the raw log and then the daily table. Records whose save fails stay
// pending and are retried, in commit order, on the next commit or Flush.
//
// Like its timer, a Tracker is not safe for concurrent use.
type Tracker struct {
	timer      *timer.Timer
	rawLog     store.RawLog
	tables     *store.TableStore
	aggregator *aggregate.Aggregator
	records    *validation.SessionRecordValidator
	pending    []*pendingSave
}

// NewTracker creates a Tracker for the timer's project
func NewTracker(cfg TrackerConfig) (*Tracker, error) {
	if cfg.Timer == nil || cfg.RawLog == nil || cfg.Tables == nil {
		return nil, errors.NewValidationError("tracker needs a timer, a raw log and a table store", nil)
	}

	validator := cfg.Validator
	if validator == nil {
		validator = validation.NewValidator()
	}
	if err := validation.NewProjectValidator(validator).ValidateProjectName(cfg.Timer.Project()); err != nil {
		return nil, err
	}

	aggregator := cfg.Aggregator
	if aggregator == nil {
		aggregator = aggregate.New("")
	}

	return &Tracker{
		timer:      cfg.Timer,
		rawLog:     cfg.RawLog,
		tables:     cfg.Tables,
		aggregator: aggregator,
		records:    validation.NewSessionRecordValidator(validator),
	}, nil
}

// Start begins a new session, discarding any session in progress
func (t *Tracker) Start() {
	t.timer.Start()
	logging.Debugf("tracker: started %s\n", t.timer.Project())
}

// PauseResume pauses a running session or resumes a paused one
func (t *Tracker) PauseResume() (timer.State, error) {
	return t.timer.Toggle()
}

// CommitAndRestart ends the current session, saves it and immediately starts the
// next one. The record is returned even when saving fails; it is then kept
// pending and the error is a *errors.PartialSaveError.
func (t *Tracker) CommitAndRestart(ctx context.Context) (domain.SessionRecord, error) {
	record, err := t.timer.Commit()
	if err != nil {
		return domain.SessionRecord{}, err
	}
	if err := t.records.Validate(record); err != nil {
		return record, err
	}

	t.pending = append(t.pending, &pendingSave{record: record})
	logging.Debugf("tracker: committed %s %s (%s)\n", record.Date, record.Range(), record.Duration)

	return record, t.Flush(ctx)
}

// Discard ends the current session without saving it
func (t *Tracker) Discard() {
	t.timer.Stop()
}

// CurrentElapsed returns the active milliseconds of the current session
func (t *Tracker) CurrentElapsed() int64 {
	return t.timer.Elapsed()
}

// Status returns a snapshot for display
func (t *Tracker) Status() Status {
	return Status{
		Project:   t.timer.Project(),
		State:     t.timer.State(),
		ElapsedMs: t.timer.Elapsed(),
		Pending:   len(t.pending),
	}
}

// Pending returns the number of committed records not yet fully saved
func (t *Tracker) Pending() int {
	return len(t.pending)
}

// Flush retries every pending record in commit order and stops at the first
// failure so that sessions reach the table in the order they were committed.
func (t *Tracker) Flush(ctx context.Context) error {
	for len(t.pending) > 0 {
		p := t.pending[0]

		if !p.rawSaved {
			if err := t.rawLog.Append(ctx, p.record); err != nil {
				logging.Debugf("tracker: raw log write failed: %v\n", err)
				return &errors.PartialSaveError{Project: p.record.Project, RawLogErr: err}
			}
			p.rawSaved = true
		}

		if !p.tableSaved {
			if err := t.saveTable(p.record); err != nil {
				logging.Debugf("tracker: table write failed: %v\n", err)
				return &errors.PartialSaveError{Project: p.record.Project, TableErr: err, RawLogSaved: true}
			}
			p.tableSaved = true
		}

		t.pending = t.pending[1:]
	}
	return nil
}

func (t *Tracker) saveTable(record domain.SessionRecord) error {
	table, err := t.loadTable()
	if err != nil {
		return err
	}
	return t.tables.Save(t.aggregator.Apply(record, table))
}

// loadTable reads the current table. A table that doesn't parse is started over;
// a table that can't be read is left alone and the error returned.
func (t *Tracker) loadTable() ([]domain.DailyRecord, error) {
	table, err := t.tables.Load()
	if errors.IsErrorType(err, errors.ErrorTypeCorruptFile) {
		logging.Warnf("daily table %s could not be parsed, starting a new one (run 'wt rebuild' to restore it from the raw log): %v", t.tables.Path(), err)
		return []domain.DailyRecord{}, nil
	}
	if err != nil {
		return nil, err
	}
	return table, nil
}

// Rebuild folds every raw log session of the tracker's project into a fresh
// daily table and writes it. Pending records already in the raw log are covered
// by the rebuilt table.
func (t *Tracker) Rebuild(ctx context.Context) ([]domain.DailyRecord, error) {
	records, err := t.search(ctx, store.SessionQuery{})
	if err != nil {
		return nil, err
	}

	table := t.aggregator.ApplyAll(records)
	if err := t.tables.Save(table); err != nil {
		return nil, err
	}

	remaining := t.pending[:0]
	for _, p := range t.pending {
		if !p.rawSaved {
			remaining = append(remaining, p)
		}
	}
	t.pending = remaining

	return table, nil
}

// Report folds the project's raw log sessions dated from..to, both inclusive,
// into a daily table without writing it. A zero bound is open.
func (t *Tracker) Report(ctx context.Context, from, to time.Time) ([]domain.DailyRecord, error) {
	records, err := t.search(ctx, store.SessionQuery{From: from, To: to})
	if err != nil {
		return nil, err
	}
	return t.aggregator.ApplyAll(records), nil
}

func (t *Tracker) search(ctx context.Context, q store.SessionQuery) ([]domain.SessionRecord, error) {
	q.Project = t.timer.Project()
	return store.Search(ctx, t.rawLog, q, t.aggregator.DateLayout())
}

// Table returns the current daily table
func (t *Tracker) Table() ([]domain.DailyRecord, error) {
	return t.tables.Load()
}

// Export renders the current daily table with renderer to path
func (t *Tracker) Export(renderer store.Renderer, path string) error {
	table, err := t.tables.Load()
	if err != nil {
		return err
	}
	return t.tables.Export(renderer, path, table)
}
