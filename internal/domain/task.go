package domain

import (
	"fmt"
	"strings"
	"time"

	"duke/internal/errors"
	"duke/internal/validation"
)

// DisplayDateLayout is how deadline and event dates are rendered, e.g. "Mar 15 2024".
const DisplayDateLayout = "Jan 2 2006"

// Kind identifies one of the three task variants.
type Kind int

const (
	KindTodo Kind = iota
	KindDeadline
	KindEvent
)

// Tag returns the one-letter variant tag used in the rendered form.
func (k Kind) Tag() string {
	switch k {
	case KindTodo:
		return "T"
	case KindDeadline:
		return "D"
	case KindEvent:
		return "E"
	default:
		return "?"
	}
}

// String returns the verb that creates this kind of task.
func (k Kind) String() string {
	switch k {
	case KindTodo:
		return "todo"
	case KindDeadline:
		return "deadline"
	case KindEvent:
		return "event"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IsValid reports whether k is one of the known variants.
func (k Kind) IsValid() bool {
	return k == KindTodo || k == KindDeadline || k == KindEvent
}

// ParseKind maps a verb or a rendered tag to its Kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "todo", "t":
		return KindTodo, true
	case "deadline", "d":
		return KindDeadline, true
	case "event", "e":
		return KindEvent, true
	default:
		return 0, false
	}
}

var taskValidator = validation.NewTaskValidator()

// Task is a named, completable unit of work. Deadlines and events carry a
// calendar date; plain todos do not.
type Task struct {
	kind Kind
	name string
	done bool
	date time.Time
}

// NewTodo creates a plain task.
func NewTodo(name string) (*Task, error) {
	trimmedName, err := taskValidator.ValidateTaskName(name)
	if err != nil {
		return nil, err
	}
	return &Task{kind: KindTodo, name: trimmedName}, nil
}

// NewDeadline creates a task due by dateText (YYYY-MM-DD).
func NewDeadline(name, dateText string) (*Task, error) {
	return newDated(KindDeadline, name, dateText)
}

// NewEvent creates a task occurring on dateText (YYYY-MM-DD).
func NewEvent(name, dateText string) (*Task, error) {
	return newDated(KindEvent, name, dateText)
}

func newDated(kind Kind, name, dateText string) (*Task, error) {
	trimmedName, err := taskValidator.ValidateTaskName(name)
	if err != nil {
		return nil, err
	}
	date, err := taskValidator.ValidateDate(dateText)
	if err != nil {
		return nil, err
	}
	return &Task{kind: kind, name: trimmedName, date: date}, nil
}

// Restore rebuilds a task read back from storage. The date is ignored for todos.
func Restore(kind Kind, name string, date time.Time, done bool) (*Task, error) {
	if !kind.IsValid() {
		return nil, errors.NewUnknownTaskKindError(kind.String())
	}
	trimmedName, err := taskValidator.ValidateTaskName(name)
	if err != nil {
		return nil, err
	}
	task := &Task{kind: kind, name: trimmedName, done: done}
	if kind != KindTodo {
		task.date = date
	}
	return task, nil
}

// Kind returns the task variant.
func (t *Task) Kind() Kind { return t.kind }

// Name returns the task description.
func (t *Task) Name() string { return t.name }

// IsDone reports whether the task is completed.
func (t *Task) IsDone() bool { return t.done }

// Date returns the due or occurrence date; the zero time for todos.
func (t *Task) Date() time.Time { return t.date }

// HasDate reports whether the variant carries a date.
func (t *Task) HasDate() bool { return t.kind == KindDeadline || t.kind == KindEvent }

// MarkDone sets the task completed. Marking a completed task is a no-op.
func (t *Task) MarkDone() { t.done = true }

// MarkUndone clears the completed flag.
func (t *Task) MarkUndone() { t.done = false }

// Render returns the canonical text form, e.g. "[D][X] Submit report (by: Mar 15 2024)".
func (t *Task) Render() string {
	marker := " "
	if t.done {
		marker = "X"
	}
	base := fmt.Sprintf("[%s][%s] %s", t.kind.Tag(), marker, t.name)

	switch t.kind {
	case KindDeadline:
		return fmt.Sprintf("%s (by: %s)", base, t.date.Format(DisplayDateLayout))
	case KindEvent:
		return fmt.Sprintf("%s (at: %s)", base, t.date.Format(DisplayDateLayout))
	default:
		return base
	}
}

// String returns the rendered form for display purposes.
func (t *Task) String() string {
	return t.Render()
}
