package domain

import (
	"strings"

	"work-tracker/internal/duration"
)

// Column headers of the daily summary table, in order.
const (
	ColumnDate          = "Date"
	ColumnTotalDuration = "Total Duration"
	ColumnWorkSessions  = "Work Sessions"
)

// Columns lists the daily table headers in display order.
var Columns = []string{ColumnDate, ColumnTotalDuration, ColumnWorkSessions}

// DailyRecord is the aggregate of every session committed on one calendar date.
type DailyRecord struct {
	Date          string   `json:"date" yaml:"date"`
	TotalDuration string   `json:"totalDuration" yaml:"totalDuration"`
	WorkSessions  []string `json:"workSessions" yaml:"workSessions"`
}

// NewDailyRecord starts a daily record from a single session.
func NewDailyRecord(record SessionRecord) DailyRecord {
	return DailyRecord{
		Date:          record.Date,
		TotalDuration: record.Duration,
		WorkSessions:  []string{record.Range()},
	}
}

// TotalMs decodes the record's total duration.
func (d DailyRecord) TotalMs() (int64, error) {
	return duration.Decode(d.TotalDuration)
}

// SessionsCell joins the work sessions the way the table stores them: one per line.
func (d DailyRecord) SessionsCell() string {
	return strings.Join(d.WorkSessions, "\n")
}

// Row returns the record as the three table cells.
func (d DailyRecord) Row() []string {
	return []string{d.Date, d.TotalDuration, d.SessionsCell()}
}

// DailyRecordFromRow rebuilds a record from table cells. Missing cells are empty.
func DailyRecordFromRow(cells []string) DailyRecord {
	cell := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}
	return DailyRecord{
		Date:          cell(0),
		TotalDuration: cell(1),
		WorkSessions:  SplitSessions(cell(2)),
	}
}

// SplitSessions splits a newline-joined work sessions cell, dropping blank lines.
func SplitSessions(cell string) []string {
	var sessions []string
	for _, line := range strings.Split(strings.ReplaceAll(cell, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			sessions = append(sessions, line)
		}
	}
	return sessions
}
