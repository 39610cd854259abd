package domain

import (
	"time"

	"work-tracker/internal/duration"
)

// Layouts holds the time layouts used to render the display strings of a record.
type Layouts struct {
	Date  string
	Clock string
}

// DefaultLayouts renders dates as DD/MM/YYYY and clock times as 24h HH:MM:SS.
var DefaultLayouts = Layouts{
	Date:  "02/01/2006",
	Clock: "15:04:05",
}

// SessionRecord is one committed tracking session. It is created once, at commit,
// and never modified afterwards. The JSON field names and order match the raw log
// document on disk.
type SessionRecord struct {
	Date            string `json:"date" yaml:"date"`
	Duration        string `json:"duration" yaml:"duration"`
	StartTime       string `json:"startTime" yaml:"startTime"`
	EndTime         string `json:"endTime" yaml:"endTime"`
	Project         string `json:"project" yaml:"project"`
	TotalDurationMs int64  `json:"totalDurationMs" yaml:"totalDurationMs"`
}

// NewSessionRecord builds a record for a session that ran from start to end with
// elapsedMs of active time. The date is the local date the session ended.
func NewSessionRecord(project string, start, end time.Time, elapsedMs int64, layouts Layouts) SessionRecord {
	if elapsedMs < 0 {
		elapsedMs = 0
	}
	return SessionRecord{
		Date:            end.Format(layouts.Date),
		Duration:        duration.Encode(elapsedMs),
		StartTime:       start.Format(layouts.Clock),
		EndTime:         end.Format(layouts.Clock),
		Project:         project,
		TotalDurationMs: elapsedMs,
	}
}

// Range returns the "start - end" form stored in a daily record's work sessions.
func (r SessionRecord) Range() string {
	return r.StartTime + " - " + r.EndTime
}

// IsValid checks the record's invariants.
func (r SessionRecord) IsValid() bool {
	if r.Date == "" || r.Project == "" {
		return false
	}
	if r.TotalDurationMs < 0 {
		return false
	}
	return r.Duration == duration.Encode(r.TotalDurationMs)
}
