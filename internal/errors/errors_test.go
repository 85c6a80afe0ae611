package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewParseError(t *testing.T) {
	err := NewParseError("unrecognized command", "blah 1")

	if err.Type != ErrorTypeParse {
		t.Errorf("NewParseError type = %v, want %v", err.Type, ErrorTypeParse)
	}
	if err.Message != "unrecognized command" {
		t.Errorf("NewParseError message = %v, want %v", err.Message, "unrecognized command")
	}
	if err.Code != "PARSE_FAILED" {
		t.Errorf("NewParseError code = %v, want %v", err.Code, "PARSE_FAILED")
	}

	input, ok := err.GetContext("input")
	if !ok || input != "blah 1" {
		t.Errorf("NewParseError should set input context")
	}
}

func TestNewUnknownTaskKindError(t *testing.T) {
	err := NewUnknownTaskKindError("chore")

	if err.Type != ErrorTypeUnknownTaskKind {
		t.Errorf("NewUnknownTaskKindError type = %v, want %v", err.Type, ErrorTypeUnknownTaskKind)
	}
	if err.Message != "invalid command to create a new task: chore" {
		t.Errorf("NewUnknownTaskKindError message = %v", err.Message)
	}

	kind, ok := err.GetContext("kind")
	if !ok || kind != "chore" {
		t.Errorf("NewUnknownTaskKindError should set kind context")
	}
}

func TestNewMalformedArgumentsError(t *testing.T) {
	err := NewMalformedArgumentsError("Usage description /by deadline", "read book")

	if err.Type != ErrorTypeMalformedArguments {
		t.Errorf("NewMalformedArgumentsError type = %v, want %v", err.Type, ErrorTypeMalformedArguments)
	}
	if err.Message != "Usage description /by deadline" {
		t.Errorf("NewMalformedArgumentsError message = %v", err.Message)
	}

	args, ok := err.GetContext("arguments")
	if !ok || args != "read book" {
		t.Errorf("NewMalformedArgumentsError should set arguments context")
	}
}

func TestNewDateFormatError(t *testing.T) {
	cause := errors.New("parsing time")
	err := NewDateFormatError("15/03/2024", cause)

	if err.Type != ErrorTypeDateFormat {
		t.Errorf("NewDateFormatError type = %v, want %v", err.Type, ErrorTypeDateFormat)
	}
	if err.Cause != cause {
		t.Errorf("NewDateFormatError cause = %v, want %v", err.Cause, cause)
	}
	if !errors.Is(err, cause) {
		t.Errorf("NewDateFormatError should unwrap to its cause")
	}
}

func TestNewNumberFormatError(t *testing.T) {
	err := NewNumberFormatError("two", nil)

	if err.Type != ErrorTypeNumberFormat {
		t.Errorf("NewNumberFormatError type = %v, want %v", err.Type, ErrorTypeNumberFormat)
	}
	if err.Message != `invalid number "two"` {
		t.Errorf("NewNumberFormatError message = %v", err.Message)
	}
}

func TestNewIndexRangeError(t *testing.T) {
	err := NewIndexRangeError(5, 3)

	if err.Type != ErrorTypeIndexRange {
		t.Errorf("NewIndexRangeError type = %v, want %v", err.Type, ErrorTypeIndexRange)
	}

	index, ok := err.GetContext("index")
	if !ok || index != 5 {
		t.Errorf("NewIndexRangeError should set index context")
	}
	size, ok := err.GetContext("size")
	if !ok || size != 3 {
		t.Errorf("NewIndexRangeError should set size context")
	}
}

func TestNewValidationError(t *testing.T) {
	cause := errors.New("field is required")
	err := NewValidationError("validation failed", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Code != "VALIDATION_FAILED" {
		t.Errorf("NewValidationError code = %v, want %v", err.Code, "VALIDATION_FAILED")
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewStorageError(t *testing.T) {
	cause := errors.New("database is locked")
	err := NewStorageError("save tasks", cause)

	if err.Type != ErrorTypeStorage {
		t.Errorf("NewStorageError type = %v, want %v", err.Type, ErrorTypeStorage)
	}
	if err.Message != "storage operation failed: save tasks" {
		t.Errorf("NewStorageError message = %v", err.Message)
	}

	operation, ok := err.GetContext("operation")
	if !ok || operation != "save tasks" {
		t.Errorf("NewStorageError should set operation context")
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("boom")
	err := WrapError(cause, ErrorTypeStorage, "load tasks")

	if err.Code != "storage" {
		t.Errorf("WrapError code = %v, want %v", err.Code, "storage")
	}
	if err.Unwrap() != cause {
		t.Errorf("WrapError should keep the cause")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NewIndexRangeError(0, 2)
	wrapped := fmt.Errorf("delete: %w", appErr)

	got, ok := AsAppError(wrapped)
	if !ok || got != appErr {
		t.Errorf("AsAppError should find the wrapped AppError")
	}

	if _, ok := AsAppError(errors.New("plain")); ok {
		t.Errorf("AsAppError should return false for plain errors")
	}
	if !IsAppError(wrapped) {
		t.Errorf("IsAppError should return true for a wrapped AppError")
	}
}

func TestIsErrorType(t *testing.T) {
	err := fmt.Errorf("mark: %w", NewNumberFormatError("x", nil))

	if !IsErrorType(err, ErrorTypeNumberFormat) {
		t.Errorf("IsErrorType should match wrapped number format error")
	}
	if IsErrorType(err, ErrorTypeIndexRange) {
		t.Errorf("IsErrorType should not match a different type")
	}
	if IsErrorType(errors.New("plain"), ErrorTypeParse) {
		t.Errorf("IsErrorType should be false for plain errors")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Parse", NewParseError("unrecognized command", "x"), "unrecognized command"},
		{"Malformed", NewMalformedArgumentsError("Usage description /at time", "x"), "Usage description /at time"},
		{"IndexRange", NewIndexRangeError(9, 1), "Invalid index, choose a valid item index!"},
		{"DateFormat", NewDateFormatError("tomorrow", nil), "Your date format has to be in the form 'yyyy-mm-dd'"},
		{"NumberFormat", NewNumberFormatError("one", nil), "Please input a valid index (i.e. a number)"},
		{"UnknownTaskKind", NewUnknownTaskKindError("chore"), "Invalid command to create a new task"},
		{"Storage", NewStorageError("save tasks", errors.New("io")), "Failed to save tasks. Please try again."},
		{"StorageLoad", NewStorageError("load tasks", errors.New("io")), "Failed to load tasks. Please try again."},
		{"StorageNoOperation", &AppError{Type: ErrorTypeStorage, Message: "x"}, "Failed to access stored tasks. Please try again."},
		{"Plain", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetUserMessage(tt.err); got != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if code := GetErrorCode(NewDateFormatError("x", nil)); code != "DATE_FORMAT" {
		t.Errorf("GetErrorCode() = %v, want DATE_FORMAT", code)
	}
	if code := GetErrorCode(errors.New("plain")); code != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode() = %v, want UNKNOWN_ERROR", code)
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Parse", NewParseError("x", "x"), false},
		{"DateFormat", NewDateFormatError("x", nil), false},
		{"IndexRange", NewIndexRangeError(1, 0), false},
		{"UnknownTaskKind", NewUnknownTaskKindError("x"), true},
		{"Storage", NewStorageError("x", nil), true},
		{"Plain", errors.New("x"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldLogError(tt.err); got != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", got, tt.expected)
			}
		})
	}
}
