package store

import (
	"context"

	"work-tracker/internal/domain"
	"work-tracker/internal/errors"
	"work-tracker/internal/repository/sqlite"
)

var (
	_ Searcher = (*SQLiteRawLog)(nil)
	_ Counter  = (*SQLiteRawLog)(nil)
)

// SQLiteRawLog keeps the raw log in the sessions table of a SQLite database.
type SQLiteRawLog struct {
	repo   sqlite.Repository
	mapper *domain.SessionMapper
	path   string
}

// NewSQLiteRawLog wraps repo, stored at path, as a raw log.
func NewSQLiteRawLog(repo sqlite.Repository, mapper *domain.SessionMapper, path string) *SQLiteRawLog {
	return &SQLiteRawLog{repo: repo, mapper: mapper, path: path}
}

// Path returns the database file path.
func (l *SQLiteRawLog) Path() string {
	return l.path
}

// Append inserts record as a new session row.
func (l *SQLiteRawLog) Append(ctx context.Context, record domain.SessionRecord) error {
	row := l.mapper.ToDatabase(record)
	if err := l.repo.CreateSession(ctx, &row); err != nil {
		return errors.NewPersistenceWriteError(l.path, err)
	}
	return nil
}

// List returns every stored session in commit order.
func (l *SQLiteRawLog) List(ctx context.Context) ([]domain.SessionRecord, error) {
	rows, err := l.repo.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	return l.mapper.FromDatabaseSlice(rows), nil
}

// Search lists the sessions matching q in commit order, filtering on the stored
// ISO day.
func (l *SQLiteRawLog) Search(ctx context.Context, q SessionQuery) ([]domain.SessionRecord, error) {
	var opts sqlite.SearchOptions
	if q.Project != "" {
		project := q.Project
		opts.Project = &project
	}
	if !q.From.IsZero() {
		from := q.From.Format(isoDay)
		opts.FromDay = &from
	}
	if !q.To.IsZero() {
		to := q.To.Format(isoDay)
		opts.ToDay = &to
	}

	rows, err := l.repo.SearchSessions(ctx, opts)
	if err != nil {
		return nil, err
	}
	return l.mapper.FromDatabaseSlice(rows), nil
}

// Count returns the number of stored sessions.
func (l *SQLiteRawLog) Count(ctx context.Context) (int, error) {
	return l.repo.CountSessions(ctx)
}

// Close closes the underlying database.
func (l *SQLiteRawLog) Close() error {
	return l.repo.Close()
}
