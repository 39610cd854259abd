package validation

import (
	"strings"
	"unicode"

	"work-tracker/internal/config"
)

// forbiddenFileChars cannot appear in a project name because the name becomes
// the summary table's file name.
const forbiddenFileChars = `<>:"/\|?*`

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a validator using default limits
func NewValidator() *Validator {
	return &Validator{}
}

// NewValidatorWithConfig creates a validator using configured limits
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidProjectNameLength checks the project name against the configured maximum
func (v *Validator) IsValidProjectNameLength(name string) bool {
	return len([]rune(strings.TrimSpace(name))) <= v.getProjectNameMaxLength()
}

// IsValidProjectName rejects names that cannot be used as a file name
func (v *Validator) IsValidProjectName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "." || trimmed == ".." {
		return false
	}
	for _, r := range trimmed {
		if unicode.IsControl(r) || strings.ContainsRune(forbiddenFileChars, r) {
			return false
		}
	}
	return true
}

// getProjectNameMaxLength returns configured maximum project name length or default
func (v *Validator) getProjectNameMaxLength() int {
	if v.config != nil && v.config.Project.MaxNameLength > 0 {
		return v.config.Project.MaxNameLength
	}
	return 100
}

// getDateLayout returns the configured date layout or the default
func (v *Validator) getDateLayout() string {
	if v.config != nil && v.config.Time.DateLayout != "" {
		return v.config.Time.DateLayout
	}
	return ""
}
