package validation

import (
	"strings"
)

// Default task name length limits, used when no configuration is supplied.
const (
	defaultNameMinLength = 1
	defaultNameMaxLength = 255
)

// TaskValidator provides validation for task input at the interactive
// boundary. Persisted records are not passed through it on load.
type TaskValidator struct {
	minLength int
	maxLength int
}

// NewTaskValidator creates a task validator with default limits
func NewTaskValidator() *TaskValidator {
	return NewTaskValidatorWithLimits(defaultNameMinLength, defaultNameMaxLength)
}

// NewTaskValidatorWithLimits creates a task validator with configured
// name length limits
func NewTaskValidatorWithLimits(minLength, maxLength int) *TaskValidator {
	return &TaskValidator{
		minLength: minLength,
		maxLength: maxLength,
	}
}

// ValidateTaskName validates a task name for creation
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()

	trimmedName := strings.TrimSpace(name)

	if trimmedName == "" {
		validationError.AddRequiredError("task name")
		return validationError
	}

	if len(trimmedName) < tv.minLength || len(trimmedName) > tv.maxLength {
		validationError.AddInvalidLengthError("task name", trimmedName, tv.minLength, tv.maxLength)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// GetValidTaskName returns a cleaned task name if valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}
