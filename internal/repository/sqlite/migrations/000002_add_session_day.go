package migrations

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"work-tracker/internal/logging"
)

func init() {
	RegisterGoMigration(2, Up_000002_add_session_day, Down_000002_add_session_day)
}

// dayLayouts are the display date layouts sessions were written with. The list is
// frozen here so the migration behaves the same whatever the configured layout is.
var dayLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"2006-01-02",
	"2006/01/02",
	"02.01.2006",
}

// Up_000002_add_session_day adds the ISO day column and backfills it from the
// display date, leaving NULL where the date cannot be parsed.
func Up_000002_add_session_day(tx *sql.Tx) error {
	if _, err := tx.Exec(`ALTER TABLE sessions ADD COLUMN day TEXT`); err != nil {
		return fmt.Errorf("failed to add day column: %w", err)
	}

	type entry struct {
		id   int64
		date string
	}
	var entries []entry

	rows, err := tx.Query("SELECT id, date FROM sessions")
	if err != nil {
		return fmt.Errorf("failed to query sessions: %w", err)
	}
	for rows.Next() {
		var e entry
		if err := rows.Scan(&e.id, &e.date); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan session row: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("error iterating sessions: %w", err)
	}
	rows.Close()

	stmt, err := tx.Prepare("UPDATE sessions SET day = ? WHERE id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare day update statement: %w", err)
	}
	defer stmt.Close()

	skipped := 0
	for _, e := range entries {
		day, ok := parseDisplayDay(e.date)
		if !ok {
			logging.Debugf("migration 2: could not parse date %q for session %d\n", e.date, e.id)
			skipped++
			continue
		}
		if _, err := stmt.Exec(day, e.id); err != nil {
			return fmt.Errorf("failed to update day for session %d: %w", e.id, err)
		}
	}

	if _, err := tx.Exec(`CREATE INDEX IF NOT EXISTS idx_sessions_day ON sessions(day)`); err != nil {
		return fmt.Errorf("failed to create day index: %w", err)
	}

	logging.Debugf("migration 2: backfilled %d sessions, %d without a parseable date\n", len(entries)-skipped, skipped)
	return nil
}

// Down_000002_add_session_day drops the day column and its index.
func Down_000002_add_session_day(tx *sql.Tx) error {
	if _, err := tx.Exec(`DROP INDEX IF EXISTS idx_sessions_day`); err != nil {
		return fmt.Errorf("failed to drop day index: %w", err)
	}
	if _, err := tx.Exec(`ALTER TABLE sessions DROP COLUMN day`); err != nil {
		return fmt.Errorf("failed to drop day column: %w", err)
	}
	return nil
}

func parseDisplayDay(date string) (string, bool) {
	date = strings.TrimSpace(date)
	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}
