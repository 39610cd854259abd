package validation

import (
	"strings"
	"testing"

	"work-tracker/internal/config"
	"work-tracker/internal/domain"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tab and newline", "\t\n", false},
		{"Valid string", "hello", true},
		{"String with leading/trailing spaces", "  hello  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsNonEmptyString(tt.input)
			if result != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidProjectName(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Simple", "work-tracker", true},
		{"Spaces and dots", "my project v1.2", true},
		{"Unicode", "projekt-äöü", true},
		{"Slash", "a/b", false},
		{"Backslash", `a\b`, false},
		{"Colon", "c:work", false},
		{"Newline", "a\nb", false},
		{"Dot", ".", false},
		{"Dot dot", "..", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsValidProjectName(tt.input)
			if result != tt.expected {
				t.Errorf("IsValidProjectName(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_ProjectNameLengthFromConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Project.MaxNameLength = 5
	validator := NewValidatorWithConfig(cfg)

	if !validator.IsValidProjectNameLength("abcde") {
		t.Errorf("5 characters should be accepted")
	}
	if validator.IsValidProjectNameLength("abcdef") {
		t.Errorf("6 characters should be rejected")
	}
	if !NewValidator().IsValidProjectNameLength(strings.Repeat("x", 100)) {
		t.Errorf("default limit should accept 100 characters")
	}
}

func TestProjectValidator_GetValidProjectName(t *testing.T) {
	pv := NewProjectValidator(nil)

	name, err := pv.GetValidProjectName("  demo  ")
	if err != nil {
		t.Fatalf("GetValidProjectName() error = %v", err)
	}
	if name != "demo" {
		t.Errorf("GetValidProjectName() = %q, want %q", name, "demo")
	}

	if _, err := pv.GetValidProjectName(""); err == nil {
		t.Errorf("empty project name should be rejected")
	}
	if _, err := pv.GetValidProjectName("a/b"); !IsValidationError(err) {
		t.Errorf("project name with slash should return a ValidationError, got %v", err)
	}
}

func TestSessionRecordValidator_Validate(t *testing.T) {
	valid := domain.SessionRecord{
		Date:            "07/03/2025",
		Duration:        "00:00:10",
		StartTime:       "09:00:00",
		EndTime:         "09:00:13",
		Project:         "demo",
		TotalDurationMs: 10000,
	}

	tests := []struct {
		name        string
		mutate      func(r *domain.SessionRecord)
		expectField string
	}{
		{"Valid record", func(r *domain.SessionRecord) {}, ""},
		{"Missing date", func(r *domain.SessionRecord) { r.Date = "" }, "date"},
		{"Unparseable date", func(r *domain.SessionRecord) { r.Date = "someday" }, "date"},
		{"Missing start", func(r *domain.SessionRecord) { r.StartTime = "" }, "startTime"},
		{"Missing end", func(r *domain.SessionRecord) { r.EndTime = " " }, "endTime"},
		{"Bad project", func(r *domain.SessionRecord) { r.Project = "a|b" }, "project"},
		{"Negative duration", func(r *domain.SessionRecord) { r.TotalDurationMs = -1 }, "totalDurationMs"},
		{"Duration mismatch", func(r *domain.SessionRecord) { r.Duration = "00:00:11" }, "duration"},
	}

	validator := NewSessionRecordValidator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := valid
			tt.mutate(&record)

			err := validator.Validate(record)
			if tt.expectField == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}

			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if len(ve.GetFieldErrors(tt.expectField)) == 0 {
				t.Errorf("Validate() errors %v do not mention field %s", ve.Errors, tt.expectField)
			}
		})
	}
}
