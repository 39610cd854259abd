package services

import (
	"time"

	"work-tracker/internal/aggregate"
	"work-tracker/internal/config"
	"work-tracker/internal/domain"
	"work-tracker/internal/store"
	"work-tracker/internal/timer"
	"work-tracker/internal/validation"
)

// NewServiceContainer wires the tracker of the configured project to its raw log
// and daily table. now is the clock of the timer and the table's generated line;
// nil means time.Now. Close releases the raw log.
func NewServiceContainer(cfg *config.Config, now func() time.Time) (*ServiceContainer, error) {
	rawLog, closeRawLog, err := config.CreateRawLog(cfg)
	if err != nil {
		return nil, err
	}

	tableConfig, err := config.TableStoreConfig(cfg)
	if err != nil {
		closeRawLog()
		return nil, err
	}
	tableConfig.Now = now
	tables := store.NewTableStore(tableConfig)

	tracker, err := NewTracker(TrackerConfig{
		Timer: timer.New(timer.Config{
			Project: cfg.Project.Name,
			Layouts: domain.Layouts{Date: cfg.Time.DateLayout, Clock: cfg.Time.ClockLayout},
			Now:     now,
		}),
		RawLog:     rawLog,
		Tables:     tables,
		Aggregator: aggregate.New(cfg.Time.DateLayout),
		Validator:  validation.NewValidatorWithConfig(cfg),
	})
	if err != nil {
		closeRawLog()
		return nil, err
	}

	return &ServiceContainer{
		Tracker:     tracker,
		RawLog:      rawLog,
		Tables:      tables,
		closeRawLog: closeRawLog,
	}, nil
}

// Close releases the raw log
func (c *ServiceContainer) Close() error {
	if c.closeRawLog == nil {
		return nil
	}
	return c.closeRawLog()
}
