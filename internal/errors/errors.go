package errors

import (
	"errors"
	"fmt"
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

// NewPreconditionError creates a new precondition violation error
func NewPreconditionError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypePrecondition,
		Message: message,
		Code:    "PRECONDITION_FAILED",
		Context: make(map[string]interface{}),
	}
}

// NewConsistencyError creates a new consistency anomaly error
func NewConsistencyError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeConsistency,
		Message: message,
		Code:    "CONSISTENCY_ANOMALY",
		Context: make(map[string]interface{}),
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

// NewStoreError creates a new store error
func NewStoreError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStore,
		Message: fmt.Sprintf("store operation failed: %s", operation),
		Code:    "STORE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewCascadeError creates a new cascade failure error
func NewCascadeError(jobID string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeCascade,
		Message: fmt.Sprintf("job deletion cascade failed for job %s", jobID),
		Code:    "CASCADE_FAILED",
		Cause:   cause,
		Context: map[string]interface{}{
			"job_id": jobID,
		},
	}
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

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypePrecondition, ErrorTypeNotFound:
			return appErr.Message
		case ErrorTypeStore, ErrorTypeCascade:
			return "The action failed. Please try again."
		case ErrorTypeConsistency:
			return appErr.Message
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypePrecondition, ErrorTypeNotFound:
			return false // These are user errors, not system errors
		default:
			return true
		}
	}
	return true
}
