package validation

import (
	"work-tracker/internal/domain"
	"work-tracker/internal/duration"
)

// SessionRecordValidator checks a record's invariants before it is persisted
type SessionRecordValidator struct {
	validator *Validator
	projects  *ProjectValidator
}

// NewSessionRecordValidator creates a record validator over v
func NewSessionRecordValidator(v *Validator) *SessionRecordValidator {
	if v == nil {
		v = NewValidator()
	}
	return &SessionRecordValidator{
		validator: v,
		projects:  NewProjectValidator(v),
	}
}

// Validate reports every broken invariant of record
func (sv *SessionRecordValidator) Validate(record domain.SessionRecord) error {
	validationError := NewValidationError()

	if !sv.validator.IsNonEmptyString(record.Date) {
		validationError.AddRequiredError("date")
	} else if _, ok := domain.ParseDay(record.Date, sv.validator.getDateLayout()); !ok {
		validationError.AddInvalidFormatError("date", record.Date, "a calendar date")
	}

	if !sv.validator.IsNonEmptyString(record.StartTime) {
		validationError.AddRequiredError("startTime")
	}
	if !sv.validator.IsNonEmptyString(record.EndTime) {
		validationError.AddRequiredError("endTime")
	}

	if err := sv.projects.ValidateProjectName(record.Project); err != nil {
		if projectErr, ok := err.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, projectErr.Errors...)
		}
	}

	if record.TotalDurationMs < 0 {
		validationError.AddInvalidValueError("totalDurationMs", record.TotalDurationMs, "must not be negative")
	} else if want := duration.Encode(record.TotalDurationMs); record.Duration != want {
		validationError.AddInvalidFormatError("duration", record.Duration, want)
	}

	return validationError.OrNil()
}
