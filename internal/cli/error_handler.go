package cli

import (
	"fmt"

	"todo-list/internal/errors"
	"todo-list/internal/validation"
)

// ErrorHandler provides centralized error handling for the menu layer
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages with operation context
func (eh *ErrorHandler) Handle(operation string, err error) error {
	return fmt.Errorf("failed to %s: %s", operation, eh.UserMessage(err))
}

// UserMessage converts an error to its user-facing message
func (eh *ErrorHandler) UserMessage(err error) string {
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return validationErr.GetUserFriendlyMessage()
	}

	if _, ok := errors.AsAppError(err); ok {
		return errors.GetUserMessage(err)
	}

	return err.Error()
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsOutOfRangeError checks if an error is an out of range error
func (eh *ErrorHandler) IsOutOfRangeError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeOutOfRange)
}

// IsStorageError checks if an error is a storage error
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeStorage)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
