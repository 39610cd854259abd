package validation

import "strings"

// ProjectValidator validates project names before they are used for file names
type ProjectValidator struct {
	validator *Validator
}

// NewProjectValidator creates a project validator over v
func NewProjectValidator(v *Validator) *ProjectValidator {
	if v == nil {
		v = NewValidator()
	}
	return &ProjectValidator{validator: v}
}

// ValidateProjectName checks that name is present, short enough and file-name safe
func (pv *ProjectValidator) ValidateProjectName(name string) error {
	validationError := NewValidationError()

	if !pv.validator.IsNonEmptyString(name) {
		validationError.AddRequiredError("project")
		return validationError
	}
	if !pv.validator.IsValidProjectNameLength(name) {
		validationError.AddInvalidLengthError("project", name, pv.validator.getProjectNameMaxLength())
	}
	if !pv.validator.IsValidProjectName(name) {
		validationError.AddInvalidCharacterError("project", name)
	}

	return validationError.OrNil()
}

// GetValidProjectName returns the trimmed name if it is valid
func (pv *ProjectValidator) GetValidProjectName(name string) (string, error) {
	if err := pv.ValidateProjectName(name); err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}
