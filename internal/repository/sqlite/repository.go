package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"work-tracker/internal/errors"
	"work-tracker/internal/repository/sqlite/migrations"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Repository defines the interface for session storage. Sessions are append-only.
type Repository interface {
	// Create operations
	CreateSession(ctx context.Context, session *SessionRow) error

	// Read operations
	ListSessions(ctx context.Context) ([]*SessionRow, error)
	SearchSessions(ctx context.Context, opts SearchOptions) ([]*SessionRow, error)
	CountSessions(ctx context.Context) (int, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// A single connection keeps ":memory:" databases alive across calls
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db, now: time.Now}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateSession inserts a session, assigning a session ID when it has none
func (r *SQLiteRepository) CreateSession(ctx context.Context, session *SessionRow) error {
	if session.SessionID == "" {
		session.SessionID = uuid.NewString()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = r.now().UTC()
	}

	query := `
	INSERT INTO sessions (session_id, date, day, duration, start_time, end_time, project, total_duration_ms, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		session.SessionID,
		session.Date,
		NullableString(session.Day),
		session.Duration,
		session.StartTime,
		session.EndTime,
		session.Project,
		session.TotalDurationMs,
		FormatTimeForDB(session.CreatedAt),
	)
	if err != nil {
		return err
	}

	session.ID = id
	return nil
}

// ListSessions retrieves all sessions in commit order
func (r *SQLiteRepository) ListSessions(ctx context.Context) ([]*SessionRow, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanSessions, "sessions")
}

// SearchSessions lists sessions matching opts in commit order. Sessions without a
// parsed day never match a day range.
func (r *SQLiteRepository) SearchSessions(ctx context.Context, opts SearchOptions) ([]*SessionRow, error) {
	var conditions []string
	var args []interface{}

	if opts.Project != nil {
		conditions = append(conditions, "project = ?")
		args = append(args, *opts.Project)
	}
	if opts.FromDay != nil {
		conditions = append(conditions, "day >= ?")
		args = append(args, *opts.FromDay)
	}
	if opts.ToDay != nil {
		conditions = append(conditions, "day <= ?")
		args = append(args, *opts.ToDay)
	}

	query := `SELECT ` + sessionColumns + ` FROM sessions`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"

	return QueryMultiple(ctx, r.db, query, ScanSessions, "sessions", args...)
}

// CountSessions returns the number of stored sessions
func (r *SQLiteRepository) CountSessions(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&count); err != nil {
		return 0, HandleDatabaseError("count sessions", err)
	}
	return count, nil
}
