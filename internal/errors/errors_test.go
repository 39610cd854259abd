package errors

import (
	"errors"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("field is required")
	err := NewValidationError("validation failed", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Message != "validation failed" {
		t.Errorf("NewValidationError message = %v, want %v", err.Message, "validation failed")
	}
	if err.Code != "VALIDATION_FAILED" {
		t.Errorf("NewValidationError code = %v, want %v", err.Code, "VALIDATION_FAILED")
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("format", "docx", "unsupported format")

	if err.Type != ErrorTypeInvalidInput {
		t.Errorf("NewInvalidInputError type = %v, want %v", err.Type, ErrorTypeInvalidInput)
	}
	if err.Message != "invalid input for format: unsupported format" {
		t.Errorf("NewInvalidInputError message = %v", err.Message)
	}

	value, ok := err.GetContext("value")
	if !ok || value != "docx" {
		t.Errorf("NewInvalidInputError should set value context")
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("session", "42")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "session not found: 42" {
		t.Errorf("NewNotFoundError message = %v", err.Message)
	}
	if err.Code != "NOT_FOUND" {
		t.Errorf("NewNotFoundError code = %v, want %v", err.Code, "NOT_FOUND")
	}
}

func TestNewDatabaseError(t *testing.T) {
	cause := errors.New("database is locked")
	err := NewDatabaseError("insert session", cause)

	if err.Type != ErrorTypeDatabase {
		t.Errorf("NewDatabaseError type = %v, want %v", err.Type, ErrorTypeDatabase)
	}
	if err.Message != "database operation failed: insert session" {
		t.Errorf("NewDatabaseError message = %v", err.Message)
	}
	if err.Code != "DATABASE_ERROR" {
		t.Errorf("NewDatabaseError code = %v, want %v", err.Code, "DATABASE_ERROR")
	}

	operation, ok := err.GetContext("operation")
	if !ok || operation != "insert session" {
		t.Errorf("NewDatabaseError should set operation context")
	}
}

func TestNewMalformedDurationError(t *testing.T) {
	err := NewMalformedDurationError("1:xx:00", nil)

	if err.Type != ErrorTypeMalformedDuration {
		t.Errorf("NewMalformedDurationError type = %v, want %v", err.Type, ErrorTypeMalformedDuration)
	}
	if err.Code != "MALFORMED_DURATION" {
		t.Errorf("NewMalformedDurationError code = %v", err.Code)
	}
	value, ok := err.GetContext("value")
	if !ok || value != "1:xx:00" {
		t.Errorf("NewMalformedDurationError should set value context")
	}
}

func TestNewPersistenceWriteError(t *testing.T) {
	cause := errors.New("read-only file system")
	err := NewPersistenceWriteError("/tmp/work-logs.json", cause)

	if err.Type != ErrorTypePersistence {
		t.Errorf("NewPersistenceWriteError type = %v, want %v", err.Type, ErrorTypePersistence)
	}
	if !errors.Is(err, cause) {
		t.Errorf("NewPersistenceWriteError should wrap its cause")
	}
	path, ok := err.GetContext("path")
	if !ok || path != "/tmp/work-logs.json" {
		t.Errorf("NewPersistenceWriteError should set path context")
	}
}

func TestNewPersistenceReadError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewPersistenceReadError("/tmp/demo.xlsx", cause)

	if err.Type != ErrorTypePersistence {
		t.Errorf("NewPersistenceReadError type = %v, want %v", err.Type, ErrorTypePersistence)
	}
	if err.Code != "PERSISTENCE_READ_FAILED" {
		t.Errorf("NewPersistenceReadError code = %v", err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("NewPersistenceReadError should wrap its cause")
	}
}

func TestNewCorruptFileError(t *testing.T) {
	err := NewCorruptFileError("/tmp/demo.json", errors.New("unexpected end of JSON input"))

	if err.Type != ErrorTypeCorruptFile {
		t.Errorf("NewCorruptFileError type = %v, want %v", err.Type, ErrorTypeCorruptFile)
	}
	if err.Message != "/tmp/demo.json could not be parsed" {
		t.Errorf("NewCorruptFileError message = %v", err.Message)
	}
	if !ShouldLogError(err) {
		t.Errorf("ShouldLogError should return true for a corrupt file")
	}
}

func TestNewInvalidTimerStateError(t *testing.T) {
	err := NewInvalidTimerStateError("pause", "idle")

	if err.Type != ErrorTypeInvalidTimerState {
		t.Errorf("NewInvalidTimerStateError type = %v, want %v", err.Type, ErrorTypeInvalidTimerState)
	}
	if err.Message != "cannot pause while timer is idle" {
		t.Errorf("NewInvalidTimerStateError message = %v", err.Message)
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("original error")
	err := WrapError(cause, ErrorTypeDatabase, "wrapped message")

	if err.Type != ErrorTypeDatabase {
		t.Errorf("WrapError type = %v, want %v", err.Type, ErrorTypeDatabase)
	}
	if err.Code != "database" {
		t.Errorf("WrapError code = %v, want %v", err.Code, "database")
	}
	if err.Cause != cause {
		t.Errorf("WrapError cause = %v, want %v", err.Cause, cause)
	}
}

func TestPartialSaveError(t *testing.T) {
	tableErr := NewPersistenceWriteError("demo.xlsx", errors.New("disk full"))
	err := &PartialSaveError{Project: "demo", TableErr: tableErr, RawLogSaved: true}

	if !IsPartialSave(err) {
		t.Errorf("IsPartialSave should return true for PartialSaveError")
	}
	if !errors.Is(err, tableErr) {
		t.Errorf("PartialSaveError should unwrap to the table error")
	}
	if !IsErrorType(err, ErrorTypePersistence) {
		t.Errorf("IsErrorType should see the wrapped persistence error")
	}
	want := "save incomplete for demo (raw log saved, daily table not saved): daily table: persistence: failed to write demo.xlsx (caused by: disk full)"
	if err.Error() != want {
		t.Errorf("PartialSaveError.Error() = %v, want %v", err.Error(), want)
	}
	if GetErrorCode(err) != "PARTIAL_SAVE" {
		t.Errorf("GetErrorCode should return PARTIAL_SAVE")
	}
}

func TestIsAppError(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation}
	regularError := errors.New("regular error")

	if !IsAppError(appError) {
		t.Errorf("IsAppError should return true for AppError")
	}
	if IsAppError(regularError) {
		t.Errorf("IsAppError should return false for regular error")
	}
	if IsAppError(nil) {
		t.Errorf("IsAppError should return false for nil")
	}
}

func TestAsAppError(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation}

	result, ok := AsAppError(appError)
	if !ok || result != appError {
		t.Errorf("AsAppError should return the same AppError instance")
	}

	result, ok = AsAppError(errors.New("regular error"))
	if ok || result != nil {
		t.Errorf("AsAppError should return nil, false for regular error")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Validation error",
			err:      NewValidationError("invalid input", nil),
			expected: "invalid input",
		},
		{
			name:     "Database error",
			err:      NewDatabaseError("query", errors.New("locked")),
			expected: "A database error occurred. Please try again.",
		},
		{
			name:     "Persistence error",
			err:      NewPersistenceWriteError("work-logs.json", errors.New("disk full")),
			expected: "Error saving work time. Please try again.",
		},
		{
			name:     "Timer state error",
			err:      NewInvalidTimerStateError("resume", "running"),
			expected: "cannot resume while timer is running",
		},
		{
			name:     "Partial save with raw log written",
			err:      &PartialSaveError{Project: "demo", RawLogSaved: true, TableErr: errors.New("x")},
			expected: "Work time was logged but the daily table could not be updated. It will be retried on the next save.",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUserMessage(tt.err)
			if result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Validation error", NewValidationError("invalid input", nil), false},
		{"Invalid input error", NewInvalidInputError("format", "x", "unsupported"), false},
		{"Timer state error", NewInvalidTimerStateError("pause", "idle"), false},
		{"Not found error", NewNotFoundError("session", "1"), false},
		{"Database error", NewDatabaseError("query", errors.New("locked")), true},
		{"Persistence error", NewPersistenceWriteError("a", errors.New("b")), true},
		{"Malformed duration", NewMalformedDurationError("x", nil), true},
		{"Partial save", &PartialSaveError{Project: "p"}, true},
		{"Regular error", errors.New("regular error"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ShouldLogError(tt.err)
			if result != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", result, tt.expected)
			}
		})
	}
}
