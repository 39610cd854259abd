package domain

import (
	"work-tracker/internal/repository/sqlite"
)

// SessionMapper handles conversion between SessionRecord and database SessionRow models.
type SessionMapper struct {
	dateLayout string
}

// NewSessionMapper creates a SessionMapper that derives the ISO day column by
// parsing dates with dateLayout.
func NewSessionMapper(dateLayout string) *SessionMapper {
	if dateLayout == "" {
		dateLayout = DefaultLayouts.Date
	}
	return &SessionMapper{dateLayout: dateLayout}
}

// ToDatabase converts a SessionRecord to a database SessionRow.
func (m *SessionMapper) ToDatabase(record SessionRecord) sqlite.SessionRow {
	return sqlite.SessionRow{
		Date:            record.Date,
		Day:             ISODay(record.Date, m.dateLayout),
		Duration:        record.Duration,
		StartTime:       record.StartTime,
		EndTime:         record.EndTime,
		Project:         record.Project,
		TotalDurationMs: record.TotalDurationMs,
	}
}

// FromDatabase converts a database SessionRow to a SessionRecord.
func (m *SessionMapper) FromDatabase(row sqlite.SessionRow) SessionRecord {
	return SessionRecord{
		Date:            row.Date,
		Duration:        row.Duration,
		StartTime:       row.StartTime,
		EndTime:         row.EndTime,
		Project:         row.Project,
		TotalDurationMs: row.TotalDurationMs,
	}
}

// FromDatabaseSlice converts a slice of database SessionRows to SessionRecords.
func (m *SessionMapper) FromDatabaseSlice(rows []*sqlite.SessionRow) []SessionRecord {
	records := make([]SessionRecord, 0, len(rows))
	for _, row := range rows {
		if row != nil {
			records = append(records, m.FromDatabase(*row))
		}
	}
	return records
}
