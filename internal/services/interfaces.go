package services

import (
	"context"
	"time"

	"work-tracker/internal/domain"
	"work-tracker/internal/store"
	"work-tracker/internal/timer"
)

// Status is a snapshot of the tracker for display
type Status struct {
	Project   string      `json:"project"`
	State     timer.State `json:"state"`
	ElapsedMs int64       `json:"elapsed_ms"`
	Pending   int         `json:"pending"`
}

// ImportResult reports what an import copied
type ImportResult struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
}

// TrackerService drives one tracking session and persists what it commits
type TrackerService interface {
	// Timer operations
	Start()
	PauseResume() (timer.State, error)
	CommitAndRestart(ctx context.Context) (domain.SessionRecord, error)
	Discard()
	CurrentElapsed() int64
	Status() Status

	// Persistence operations
	Flush(ctx context.Context) error
	Pending() int
	Rebuild(ctx context.Context) ([]domain.DailyRecord, error)
	Report(ctx context.Context, from, to time.Time) ([]domain.DailyRecord, error)

	// Table operations
	Table() ([]domain.DailyRecord, error)
	Export(renderer store.Renderer, path string) error
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	Tracker TrackerService
	RawLog  store.RawLog
	Tables  *store.TableStore

	closeRawLog func() error
}
