package sqlite

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []interface{}
	err  error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}

	if len(dest) != len(ts.data) {
		return errors.New("mismatch in number of destinations")
	}

	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = ts.data[i].(int64)
		case *bool:
			*v = ts.data[i].(bool)
		case *sql.NullString:
			*v = ts.data[i].(sql.NullString)
		case *string:
			*v = ts.data[i].(string)
		}
	}

	return nil
}

// TestRows implements the Rows interface for testing
type TestRows struct {
	rows  [][]interface{}
	index int
	err   error
}

func (tr *TestRows) Next() bool {
	if tr.index >= len(tr.rows) {
		return false
	}
	tr.index++
	return true
}

func (tr *TestRows) Scan(dest ...interface{}) error {
	scanner := &TestScanner{data: tr.rows[tr.index-1]}
	return scanner.Scan(dest...)
}

func (tr *TestRows) Err() error {
	return tr.err
}

func TestScanTask(t *testing.T) {
	due := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		scanner     *TestScanner
		expected    *Task
		expectError bool
	}{
		{
			name: "deadline with date",
			scanner: &TestScanner{
				data: []interface{}{int64(1), "deadline", "Submit report", true, sql.NullString{String: "2024-03-15", Valid: true}},
			},
			expected: &Task{Position: 1, Kind: "deadline", Name: "Submit report", Done: true, Date: &due},
		},
		{
			name: "todo without date",
			scanner: &TestScanner{
				data: []interface{}{int64(2), "todo", "read book", false, sql.NullString{}},
			},
			expected: &Task{Position: 2, Kind: "todo", Name: "read book"},
		},
		{
			name: "corrupt date",
			scanner: &TestScanner{
				data: []interface{}{int64(3), "event", "party", false, sql.NullString{String: "soon", Valid: true}},
			},
			expectError: true,
		},
		{
			name:        "scan error",
			scanner:     &TestScanner{err: errors.New("scan failed")},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ScanTask(tt.scanner)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestScanTasks(t *testing.T) {
	rows := &TestRows{
		rows: [][]interface{}{
			{int64(1), "todo", "a", false, sql.NullString{}},
			{int64(2), "todo", "b", true, sql.NullString{}},
		},
	}

	tasks, err := ScanTasks(rows)
	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, "b", tasks[1].Name)
	assert.True(t, tasks[1].Done)

	failing := &TestRows{err: errors.New("iteration failed")}
	_, err = ScanTasks(failing)
	assert.Error(t, err)
}
