package validation

import (
	"time"

	"duke/internal/errors"
)

// TaskValidator validates the inputs of task creation and task addressing
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTaskName returns the trimmed name, or a validation error when
// nothing is left after trimming.
func (tv *TaskValidator) ValidateTaskName(name string) (string, error) {
	trimmedName := tv.validator.TrimAndValidateString(name)
	if !tv.validator.IsNonEmptyString(trimmedName) {
		return "", errors.NewValidationError("The description of a task cannot be empty!", nil).
			WithContext("field", "task_name")
	}
	return trimmedName, nil
}

// ValidateDate parses date text in the fixed YYYY-MM-DD layout.
func (tv *TaskValidator) ValidateDate(value string) (time.Time, error) {
	if !tv.validator.IsCalendarDateShape(value) {
		return time.Time{}, errors.NewDateFormatError(value, nil)
	}
	date, err := tv.validator.ParseCalendarDate(value)
	if err != nil {
		// shape is right but the day does not exist, e.g. 2023-02-30
		return time.Time{}, errors.NewDateFormatError(value, err)
	}
	return date, nil
}

// ValidateIndex parses 1-based index text against a list of the given size
// and returns the matching 0-based offset.
func (tv *TaskValidator) ValidateIndex(value string, size int) (int, error) {
	index, err := tv.validator.ParseInteger(value)
	if err != nil {
		return 0, errors.NewNumberFormatError(value, err)
	}
	if !tv.validator.IsWithinRange(index, size) {
		return 0, errors.NewIndexRangeError(index, size)
	}
	return index - 1, nil
}
