package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewDatabaseError creates a new database error
func NewDatabaseError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDatabase,
		Message: fmt.Sprintf("database operation failed: %s", operation),
		Code:    "DATABASE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewPermissionError creates a new permission error
func NewPermissionError(operation string, resource string) *AppError {
	return &AppError{
		Type:    ErrorTypePermission,
		Message: fmt.Sprintf("permission denied for %s on %s", operation, resource),
		Code:    "PERMISSION_DENIED",
		Context: map[string]interface{}{
			"operation": operation,
			"resource":  resource,
		},
	}
}

// NewMalformedDurationError reports a duration string that is not HH:MM:SS
func NewMalformedDurationError(value string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeMalformedDuration,
		Message: fmt.Sprintf("malformed duration %q: expected HH:MM:SS", value),
		Code:    "MALFORMED_DURATION",
		Cause:   cause,
		Context: map[string]interface{}{
			"value": value,
		},
	}
}

// NewPersistenceWriteError reports an I/O failure while saving one of the log files
func NewPersistenceWriteError(path string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypePersistence,
		Message: fmt.Sprintf("failed to write %s", path),
		Code:    "PERSISTENCE_WRITE_FAILED",
		Cause:   cause,
		Context: map[string]interface{}{
			"path": path,
		},
	}
}

// NewPersistenceReadError reports an I/O failure while reading one of the log files
func NewPersistenceReadError(path string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypePersistence,
		Message: fmt.Sprintf("failed to read %s", path),
		Code:    "PERSISTENCE_READ_FAILED",
		Cause:   cause,
		Context: map[string]interface{}{
			"path": path,
		},
	}
}

// NewCorruptFileError reports a file that was read but could not be parsed
func NewCorruptFileError(path string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeCorruptFile,
		Message: fmt.Sprintf("%s could not be parsed", path),
		Code:    "CORRUPT_FILE",
		Cause:   cause,
		Context: map[string]interface{}{
			"path": path,
		},
	}
}

// NewInvalidTimerStateError reports a timer transition attempted from the wrong state
func NewInvalidTimerStateError(operation string, state string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidTimerState,
		Message: fmt.Sprintf("cannot %s while timer is %s", operation, state),
		Code:    "INVALID_TIMER_STATE",
		Context: map[string]interface{}{
			"operation": operation,
			"state":     state,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// PartialSaveError reports a commit where the raw log and the daily table did not
// both get written. The record is carried so the caller can retry.
type PartialSaveError struct {
	Project     string
	RawLogErr   error
	TableErr    error
	RawLogSaved bool
}

// Error implements the error interface
func (e *PartialSaveError) Error() string {
	var parts []string
	if e.RawLogErr != nil {
		parts = append(parts, fmt.Sprintf("raw log: %v", e.RawLogErr))
	}
	if e.TableErr != nil {
		parts = append(parts, fmt.Sprintf("daily table: %v", e.TableErr))
	}
	state := "nothing saved"
	if e.RawLogSaved {
		state = "raw log saved, daily table not saved"
	}
	return fmt.Sprintf("save incomplete for %s (%s): %s", e.Project, state, strings.Join(parts, "; "))
}

// Unwrap exposes both underlying failures to errors.Is and errors.As
func (e *PartialSaveError) Unwrap() []error {
	var errs []error
	if e.RawLogErr != nil {
		errs = append(errs, e.RawLogErr)
	}
	if e.TableErr != nil {
		errs = append(errs, e.TableErr)
	}
	return errs
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// IsPartialSave reports whether err is, or wraps, a PartialSaveError
func IsPartialSave(err error) bool {
	var partial *PartialSaveError
	return errors.As(err, &partial)
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	var partial *PartialSaveError
	if errors.As(err, &partial) {
		if partial.RawLogSaved {
			return "Work time was logged but the daily table could not be updated. It will be retried on the next save."
		}
		return "Error saving work time. The session is kept and will be retried on the next save."
	}
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation:
			return appErr.Message
		case ErrorTypeNotFound:
			return appErr.Message
		case ErrorTypeInvalidInput:
			return appErr.Message
		case ErrorTypeDatabase:
			return "A database error occurred. Please try again."
		case ErrorTypePermission:
			return appErr.Message
		case ErrorTypeMalformedDuration:
			return appErr.Message
		case ErrorTypePersistence:
			return "Error saving work time. Please try again."
		case ErrorTypeInvalidTimerState:
			return appErr.Message
		case ErrorTypeCorruptFile:
			return appErr.Message
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if IsPartialSave(err) {
		return "PARTIAL_SAVE"
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if IsPartialSave(err) {
		return true
	}
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput, ErrorTypeInvalidTimerState:
			return false // These are user errors, not system errors
		case ErrorTypeDatabase, ErrorTypePermission, ErrorTypePersistence, ErrorTypeMalformedDuration, ErrorTypeCorruptFile:
			return true // These are system errors that should be logged
		default:
			return true
		}
	}
	return true // Unknown errors should be logged
}
