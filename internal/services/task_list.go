package services

import (
	"slices"
	"strings"

	"duke/internal/domain"
	"duke/internal/errors"
	"duke/internal/validation"
)

const (
	deadlineDelimiter = " /by"
	eventDelimiter    = " /at"

	deadlineUsage = "Usage description /by deadline"
	eventUsage    = "Usage description /at time"
)

// TaskList is the ordered task collection. Positions seen by callers are
// 1-based; every operation validates before it mutates, so a failed call
// leaves the list as it was.
type TaskList struct {
	items         []*domain.Task
	taskValidator *validation.TaskValidator
}

// NewTaskList creates a task list holding initial, in order.
func NewTaskList(initial []*domain.Task) *TaskList {
	items := make([]*domain.Task, 0, len(initial))
	items = append(items, initial...)
	return &TaskList{
		items:         items,
		taskValidator: validation.NewTaskValidator(),
	}
}

// AddPlain appends a todo named name.
func (l *TaskList) AddPlain(name string) (*domain.Task, error) {
	task, err := domain.NewTodo(name)
	if err != nil {
		return nil, err
	}
	l.items = append(l.items, task)
	return task, nil
}

// AddDeadline appends a deadline from text of the form "description /by yyyy-mm-dd".
func (l *TaskList) AddDeadline(rawText string) (*domain.Task, error) {
	name, date, err := splitDated(rawText, deadlineDelimiter, deadlineUsage)
	if err != nil {
		return nil, err
	}
	task, err := domain.NewDeadline(name, date)
	if err != nil {
		return nil, err
	}
	l.items = append(l.items, task)
	return task, nil
}

// AddEvent appends an event from text of the form "description /at yyyy-mm-dd".
func (l *TaskList) AddEvent(rawText string) (*domain.Task, error) {
	name, date, err := splitDated(rawText, eventDelimiter, eventUsage)
	if err != nil {
		return nil, err
	}
	task, err := domain.NewEvent(name, date)
	if err != nil {
		return nil, err
	}
	l.items = append(l.items, task)
	return task, nil
}

// splitDated splits rawText into exactly two non-blank trimmed segments.
func splitDated(rawText, delimiter, usage string) (string, string, error) {
	parts := strings.Split(rawText, delimiter)
	if len(parts) != 2 {
		return "", "", errors.NewMalformedArgumentsError(usage, rawText).
			WithContext("delimiter", delimiter)
	}
	name := strings.TrimSpace(parts[0])
	date := strings.TrimSpace(parts[1])
	if name == "" || date == "" {
		return "", "", errors.NewMalformedArgumentsError(usage, rawText).
			WithContext("delimiter", delimiter)
	}
	return name, date, nil
}

// Delete removes the task at the 1-based position in indexText and returns
// its rendered form as it was before removal.
func (l *TaskList) Delete(indexText string) (string, error) {
	i, err := l.taskValidator.ValidateIndex(indexText, len(l.items))
	if err != nil {
		return "", err
	}
	rendered := l.items[i].Render()
	l.items = slices.Delete(l.items, i, i+1)
	return rendered, nil
}

// MarkOrUnmark sets the completion state of the task at the 1-based position
// in indexText and returns its rendered form afterwards.
func (l *TaskList) MarkOrUnmark(indexText string, toDone bool) (string, error) {
	i, err := l.taskValidator.ValidateIndex(indexText, len(l.items))
	if err != nil {
		return "", err
	}
	task := l.items[i]
	if toDone {
		task.MarkDone()
	} else {
		task.MarkUndone()
	}
	return task.Render(), nil
}

// Find returns the tasks whose name contains query, case-sensitively, in list order.
func (l *TaskList) Find(query string) []Match {
	matches := []Match{}
	for i, task := range l.items {
		if strings.Contains(task.Name(), query) {
			matches = append(matches, Match{
				Position: i + 1,
				Ordinal:  len(matches) + 1,
				Task:     task,
			})
		}
	}
	return matches
}

// Size returns the number of tasks.
func (l *TaskList) Size() int {
	return len(l.items)
}

// All returns a copy of the tasks in list order.
func (l *TaskList) All() []*domain.Task {
	out := make([]*domain.Task, len(l.items))
	copy(out, l.items)
	return out
}

// Append adds already-built tasks to the end of the list.
func (l *TaskList) Append(tasks ...*domain.Task) {
	l.items = append(l.items, tasks...)
}
