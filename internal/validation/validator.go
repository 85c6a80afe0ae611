package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the only accepted calendar-date representation.
const DateLayout = "2006-01-02"

// Validator provides common validation utilities
type Validator struct {
	dateRegex *regexp.Regexp
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		dateRegex: regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// IsCalendarDateShape checks the YYYY-MM-DD shape without checking the calendar
func (v *Validator) IsCalendarDateShape(s string) bool {
	return v.dateRegex.MatchString(s)
}

// ParseCalendarDate parses a YYYY-MM-DD date with no time or zone component.
// The result is at midnight UTC.
func (v *Validator) ParseCalendarDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseInteger parses base-10 integer text after trimming surrounding whitespace
func (v *Validator) ParseInteger(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// IsWithinRange checks 1 <= index <= size
func (v *Validator) IsWithinRange(index, size int) bool {
	return index >= 1 && index <= size
}
