package cli

import (
	"fmt"

	"jobclock/internal/errors"
	"jobclock/internal/logging"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle maps internal errors to user-friendly messages. Store and
// cascade failures additionally get their detail logged, since the user
// message deliberately hides it.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if errors.ShouldLogError(err) {
		logging.Debugf("cli: %s: %v\n", operation, err)
	}
	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// IsPreconditionError checks if an error is a precondition violation
func (eh *ErrorHandler) IsPreconditionError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypePrecondition)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}
