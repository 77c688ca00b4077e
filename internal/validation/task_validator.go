package validation

import (
	"task-tracker/internal/config"
	"task-tracker/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator using configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTaskName validates a task name for creation or update. The name is
// checked as given; surrounding spaces are part of it.
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(name) {
		validationError.AddRequiredError("task_name")
		return validationError
	}

	if !tv.validator.IsValidTaskNameLength(name) {
		validationError.AddInvalidLengthError("task_name", name,
			tv.validator.TaskNameMinLength(), tv.validator.TaskNameMaxLength())
	}

	if !tv.validator.IsValidTaskName(name) {
		validationError.AddInvalidCharacterError("task_name", name)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTaskID validates a task id
func (tv *TaskValidator) ValidateTaskID(id string) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("task_id", id, "8 characters from 0-9 and a-f")
		return validationError
	}
	return nil
}

// ValidateTask validates a full domain.Task, as passed to an upsert
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	if err := tv.ValidateTaskID(task.ID); err != nil {
		if idErr, ok := err.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, idErr.Errors...)
		}
	}

	if err := tv.ValidateTaskName(task.Name); err != nil {
		if nameErr, ok := err.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, nameErr.Errors...)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// GetValidTaskName returns name unchanged if it is valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return name, nil
}
