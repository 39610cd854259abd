package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// sessionColumns is the column list every session query selects, in scan order
const sessionColumns = `id, session_id, date, day, duration, start_time, end_time, project, total_duration_ms, created_at`

// ScanSession scans a single session from a database row
func ScanSession(scanner Scanner) (*SessionRow, error) {
	row := &SessionRow{}
	var day sql.NullString
	var createdAt string

	err := scanner.Scan(
		&row.ID,
		&row.SessionID,
		&row.Date,
		&day,
		&row.Duration,
		&row.StartTime,
		&row.EndTime,
		&row.Project,
		&row.TotalDurationMs,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if day.Valid {
		row.Day = day.String
	}
	if t, err := ParseTimeFromDB(createdAt); err == nil {
		row.CreatedAt = t
	}

	return row, nil
}

// ScanSessions scans multiple sessions from database rows
func ScanSessions(rows Rows) ([]*SessionRow, error) {
	sessions := []*SessionRow{}
	for rows.Next() {
		session, err := ScanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}
