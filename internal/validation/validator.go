package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"task-tracker/internal/config"
	"task-tracker/internal/idgen"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidTaskNameLength checks the name's rune count against configured limits
func (v *Validator) IsValidTaskNameLength(name string) bool {
	length := utf8.RuneCountInString(name)
	return length >= v.TaskNameMinLength() && length <= v.TaskNameMaxLength()
}

// IsValidTaskName rejects control characters. A newline or tab in a name
// would break the one-line-per-task list output.
func (v *Validator) IsValidTaskName(name string) bool {
	for _, r := range name {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// IsValidTaskID checks that id has the shape of a generated task id
func (v *Validator) IsValidTaskID(id string) bool {
	return idgen.Valid(id)
}

// TaskNameMinLength returns configured minimum task name length or default
func (v *Validator) TaskNameMinLength() int {
	if v.config != nil {
		return v.config.Validation.TaskNameMinLength
	}
	return 1
}

// TaskNameMaxLength returns configured maximum task name length or default
func (v *Validator) TaskNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TaskNameMaxLength
	}
	return 255
}
