package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"work-tracker/internal/domain"
	"work-tracker/internal/errors"
)

// JSONRawLog keeps the raw log as a JSON array in one file, rewritten on every append.
type JSONRawLog struct {
	path    string
	dirPerm os.FileMode
}

// NewJSONRawLog creates a raw log stored at path.
func NewJSONRawLog(path string, dirPerm os.FileMode) *JSONRawLog {
	if dirPerm == 0 {
		dirPerm = 0755
	}
	return &JSONRawLog{path: path, dirPerm: dirPerm}
}

// Path returns the raw log file path.
func (l *JSONRawLog) Path() string {
	return l.path
}

// Ensure creates the directory and an empty "[]" log if the file is missing.
func (l *JSONRawLog) Ensure() error {
	if err := os.MkdirAll(filepath.Dir(l.path), l.dirPerm); err != nil {
		return errors.NewPersistenceWriteError(l.path, err)
	}
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		if err := os.WriteFile(l.path, []byte("[]"), 0644); err != nil {
			return errors.NewPersistenceWriteError(l.path, err)
		}
	}
	return nil
}

// Append adds record to the end of the log. Entries already in the file are kept
// as they are, including fields this program does not know.
func (l *JSONRawLog) Append(ctx context.Context, record domain.SessionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := l.Ensure(); err != nil {
		return err
	}

	entries, err := l.readRaw()
	if err != nil {
		return errors.NewPersistenceWriteError(l.path, err)
	}

	encoded, err := encodeJSON(record, "")
	if err != nil {
		return errors.NewPersistenceWriteError(l.path, err)
	}
	entries = append(entries, encoded)

	data, err := encodeJSON(entries, "  ")
	if err != nil {
		return errors.NewPersistenceWriteError(l.path, err)
	}
	if err := os.WriteFile(l.path, data, 0644); err != nil {
		return errors.NewPersistenceWriteError(l.path, err)
	}
	return nil
}

// List returns every record in the log in commit order. A missing file is an empty log.
func (l *JSONRawLog) List(ctx context.Context) ([]domain.SessionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return []domain.SessionRecord{}, nil
	}
	if err != nil {
		return nil, err
	}

	records := []domain.SessionRecord{}
	if len(bytes.TrimSpace(data)) == 0 {
		return records, nil
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("raw log %s is not a JSON array of sessions: %w", l.path, err)
	}
	return records, nil
}

func (l *JSONRawLog) readRaw() ([]json.RawMessage, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, err
	}

	entries := []json.RawMessage{}
	if len(bytes.TrimSpace(data)) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("raw log is not a JSON array: %w", err)
	}
	return entries, nil
}

// encodeJSON encodes v with the given indent, leaving <, > and & unescaped and
// without a trailing newline.
func encodeJSON(v interface{}, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
