package sqlite

import (
	"database/sql"
	"time"
)

// DateLayout is the storage format of task dates
const DateLayout = "2006-01-02"

// FormatDateForDB formats a calendar date for storage
func FormatDateForDB(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDatePtrForDB formats a *time.Time value, returning nil if the pointer is nil
func FormatDatePtrForDB(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return FormatDateForDB(*t)
}

// ParseDateFromDB parses a stored date, returning nil for NULL
func ParseDateFromDB(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
