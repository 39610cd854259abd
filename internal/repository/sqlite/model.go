package sqlite

import "time"

// SessionRow is one committed session as stored in the sessions table
type SessionRow struct {
	ID              int64
	SessionID       string
	Date            string
	Day             string // ISO calendar day, empty when Date could not be parsed
	Duration        string
	StartTime       string
	EndTime         string
	Project         string
	TotalDurationMs int64
	CreatedAt       time.Time
}

// SearchOptions narrows a session listing. Days are ISO YYYY-MM-DD and inclusive.
type SearchOptions struct {
	Project *string
	FromDay *string
	ToDay   *string
}
