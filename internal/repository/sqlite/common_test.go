package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	apperrors "work-tracker/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleDatabaseError(t *testing.T) {
	originalErr := errors.New("database connection failed")
	result := HandleDatabaseError("test operation", originalErr)

	assert.NotNil(t, result)
	assert.Contains(t, result.Error(), "test operation")
	assert.Contains(t, result.Error(), "database connection failed")
	assert.True(t, apperrors.IsErrorType(result, apperrors.ErrorTypeDatabase))
}

func TestQueryHelpers(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	_, err = db.ExecContext(ctx, `CREATE TABLE names (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL)`)
	require.NoError(t, err)

	id, err := ExecuteWithLastInsertID(ctx, db, `INSERT INTO names (name) VALUES (?)`, "first")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	scanName := func(s Scanner) (*string, error) {
		var name string
		if err := s.Scan(&name); err != nil {
			return nil, err
		}
		return &name, nil
	}
	scanNames := func(rows Rows) ([]*string, error) {
		var names []*string
		for rows.Next() {
			name, err := scanName(rows)
			if err != nil {
				return nil, err
			}
			names = append(names, name)
		}
		return names, rows.Err()
	}

	names, err := QueryMultiple(ctx, db, `SELECT name FROM names`, scanNames, "names")
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "first", *names[0])

	_, err = QueryMultiple(ctx, db, `SELECT name FROM missing`, scanNames, "names")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))

	_, err = ExecuteWithLastInsertID(ctx, db, `INSERT INTO names (name) VALUES (NULL)`)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))
}
