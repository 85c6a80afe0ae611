package errors

import (
	"errors"
	"fmt"
)

// NewParseError creates an error for input that matches no grammar rule.
// The message is shown to the user as is.
func NewParseError(message string, input string) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: message,
		Code:    "PARSE_FAILED",
		Context: map[string]any{
			"input": input,
		},
	}
}

// NewUnknownTaskKindError creates an error for an add command carrying a kind
// the task list cannot create.
func NewUnknownTaskKindError(kind string) *AppError {
	return &AppError{
		Type:    ErrorTypeUnknownTaskKind,
		Message: fmt.Sprintf("invalid command to create a new task: %s", kind),
		Code:    "UNKNOWN_TASK_KIND",
		Context: map[string]any{
			"kind": kind,
		},
	}
}

// NewMalformedArgumentsError creates an error for argument text that does not
// split into the expected segments.
func NewMalformedArgumentsError(usage string, arguments string) *AppError {
	return &AppError{
		Type:    ErrorTypeMalformedArguments,
		Message: usage,
		Code:    "MALFORMED_ARGUMENTS",
		Context: map[string]any{
			"arguments": arguments,
		},
	}
}

// NewDateFormatError creates an error for date text that is not a calendar date
func NewDateFormatError(value string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDateFormat,
		Message: fmt.Sprintf("invalid date %q, expected yyyy-mm-dd", value),
		Code:    "DATE_FORMAT",
		Cause:   cause,
		Context: map[string]any{
			"value": value,
		},
	}
}

// NewNumberFormatError creates an error for index text that is not an integer
func NewNumberFormatError(value string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeNumberFormat,
		Message: fmt.Sprintf("invalid number %q", value),
		Code:    "NUMBER_FORMAT",
		Cause:   cause,
		Context: map[string]any{
			"value": value,
		},
	}
}

// NewIndexRangeError creates an error for an index outside 1..size
func NewIndexRangeError(index int, size int) *AppError {
	return &AppError{
		Type:    ErrorTypeIndexRange,
		Message: "Invalid index, choose a valid item index!",
		Code:    "INDEX_RANGE",
		Context: map[string]any{
			"index": index,
			"size":  size,
		},
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// NewStorageError creates a new storage error
func NewStorageError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("storage operation failed: %s", operation),
		Code:    "STORAGE_ERROR",
		Cause:   cause,
		Context: map[string]any{
			"operation": operation,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]any),
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
		case ErrorTypeParse, ErrorTypeMalformedArguments, ErrorTypeIndexRange, ErrorTypeValidation:
			return appErr.Message
		case ErrorTypeDateFormat:
			return "Your date format has to be in the form 'yyyy-mm-dd'"
		case ErrorTypeNumberFormat:
			return "Please input a valid index (i.e. a number)"
		case ErrorTypeUnknownTaskKind:
			return "Invalid command to create a new task"
		case ErrorTypeStorage:
			if operation, ok := appErr.GetContext("operation"); ok && operation != "" {
				return fmt.Sprintf("Failed to %v. Please try again.", operation)
			}
			return "Failed to access stored tasks. Please try again."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeParse, ErrorTypeMalformedArguments, ErrorTypeDateFormat,
			ErrorTypeNumberFormat, ErrorTypeIndexRange, ErrorTypeValidation:
			return false // user input errors
		case ErrorTypeUnknownTaskKind, ErrorTypeStorage:
			return true
		default:
			return true
		}
	}
	return true
}
