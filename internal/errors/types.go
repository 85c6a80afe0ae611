package errors

import (
	"fmt"
	"maps"
)

// ErrorType groups failures by how the session reports them.
type ErrorType int

const (
	// ErrorTypeParse covers lines that match no command
	ErrorTypeParse ErrorType = iota
	// ErrorTypeUnknownTaskKind covers "todo new" with a kind other than todo, deadline or event
	ErrorTypeUnknownTaskKind
	ErrorTypeMalformedArguments
	ErrorTypeDateFormat
	ErrorTypeNumberFormat
	ErrorTypeIndexRange
	ErrorTypeValidation
	// ErrorTypeStorage covers database failures; only these reach the error log
	ErrorTypeStorage
)

var typeNames = [...]string{
	ErrorTypeParse:              "parse",
	ErrorTypeUnknownTaskKind:    "unknown_task_kind",
	ErrorTypeMalformedArguments: "malformed_arguments",
	ErrorTypeDateFormat:         "date_format",
	ErrorTypeNumberFormat:       "number_format",
	ErrorTypeIndexRange:         "index_range",
	ErrorTypeValidation:         "validation",
	ErrorTypeStorage:            "storage",
}

func (et ErrorType) String() string {
	if et < 0 || int(et) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[et]
}

// AppError is a classified failure. Message is what the user sees for input
// errors; Context carries the details that go to the log.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]any
}

func (e *AppError) Error() string {
	msg := e.Type.String() + ": " + e.Message
	if e.Cause == nil {
		return msg
	}
	return fmt.Sprintf("%s: %v", msg, e.Cause)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is reports a match on type and code so sentinel AppErrors work with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Type == e.Type && t.Code == e.Code
}

func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// WithContext records key on e and returns e for chaining.
func (e *AppError) WithContext(key string, value any) *AppError {
	if e.Context == nil {
		e.Context = map[string]any{}
	}
	e.Context[key] = value
	return e
}

func (e *AppError) GetContext(key string) (any, bool) {
	value, ok := e.Context[key]
	return value, ok
}

// Fields returns the context together with the error code, ready to attach
// to a log entry. The returned map is a copy.
func (e *AppError) Fields() map[string]any {
	fields := maps.Clone(e.Context)
	if fields == nil {
		fields = map[string]any{}
	}
	fields["code"] = e.Code
	return fields
}
