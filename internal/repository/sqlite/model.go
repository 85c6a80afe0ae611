package sqlite

import "time"

// Task is one stored row of the task list. Position is the 1-based place of
// the task in the list and doubles as the primary key.
type Task struct {
	Position int64
	Kind     string
	Name     string
	Done     bool
	Date     *time.Time // nil for todos
}
