package domain

import (
	"time"

	"duke/internal/errors"
	"duke/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain tasks and stored task rows.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task at the given 1-based list position to a database Task.
func (m *TaskMapper) ToDatabase(domainTask *Task, position int) sqlite.Task {
	row := sqlite.Task{
		Position: int64(position),
		Kind:     domainTask.Kind().String(),
		Name:     domainTask.Name(),
		Done:     domainTask.IsDone(),
	}
	if domainTask.HasDate() {
		date := domainTask.Date()
		row.Date = &date
	}
	return row
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) (*Task, error) {
	kind, ok := ParseKind(dbTask.Kind)
	if !ok {
		return nil, errors.NewUnknownTaskKindError(dbTask.Kind)
	}
	var date time.Time
	if dbTask.Date != nil {
		date = *dbTask.Date
	}
	return Restore(kind, dbTask.Name, date, dbTask.Done)
}

// ToDatabaseSlice converts an ordered slice of domain Tasks to database Tasks,
// numbering positions from 1.
func (m *TaskMapper) ToDatabaseSlice(domainTasks []*Task) []sqlite.Task {
	dbTasks := make([]sqlite.Task, len(domainTasks))
	for i, task := range domainTasks {
		dbTasks[i] = m.ToDatabase(task, i+1)
	}
	return dbTasks
}

// FromDatabaseSlice converts database Tasks to domain Tasks, keeping their order.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) ([]*Task, error) {
	domainTasks := make([]*Task, len(dbTasks))
	for i, row := range dbTasks {
		task, err := m.FromDatabase(*row)
		if err != nil {
			return nil, err
		}
		domainTasks[i] = task
	}
	return domainTasks, nil
}
