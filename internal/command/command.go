// Package command holds the closed set of operations a parsed input line can
// request and runs them against a task list.
package command

import (
	"fmt"

	"duke/internal/domain"
	"duke/internal/errors"
	"duke/internal/services"
)

// Kind tags a Command variant.
type Kind int

const (
	KindAdd Kind = iota
	KindDelete
	KindMark
	KindUnmark
	KindFind
	KindList
	KindExit
)

func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "add"
	case KindDelete:
		return "delete"
	case KindMark:
		return "mark"
	case KindUnmark:
		return "unmark"
	case KindFind:
		return "find"
	case KindList:
		return "list"
	case KindExit:
		return "exit"
	default:
		return fmt.Sprintf("command(%d)", int(k))
	}
}

// Command is an immutable request for one operation. TaskKind is only
// meaningful for KindAdd; Args holds the raw argument text.
type Command struct {
	Kind     Kind
	TaskKind domain.Kind
	Args     string
}

// Add requests a new task of the given kind built from args.
func Add(kind domain.Kind, args string) Command {
	return Command{Kind: KindAdd, TaskKind: kind, Args: args}
}

// Delete requests removal of the task at the 1-based index in indexText.
func Delete(indexText string) Command { return Command{Kind: KindDelete, Args: indexText} }

// Mark requests completion of the task at the 1-based index in indexText.
func Mark(indexText string) Command { return Command{Kind: KindMark, Args: indexText} }

// Unmark clears completion of the task at the 1-based index in indexText.
func Unmark(indexText string) Command { return Command{Kind: KindUnmark, Args: indexText} }

// Find requests the tasks whose names contain query.
func Find(query string) Command { return Command{Kind: KindFind, Args: query} }

// List requests every task.
func List() Command { return Command{Kind: KindList} }

// Exit ends the session.
func Exit() Command { return Command{Kind: KindExit} }

// Mutates reports whether a successful run of c changes the task list.
func (c Command) Mutates() bool {
	switch c.Kind {
	case KindAdd, KindDelete, KindMark, KindUnmark:
		return true
	default:
		return false
	}
}

// Result is the outcome of a successful Execute. Which fields are set
// depends on Kind.
type Result struct {
	Kind Kind
	// Task is the task created by an add.
	Task *domain.Task
	// Rendered is the deleted task before removal, or the marked/unmarked task after the change.
	Rendered string
	// Count is the list size after the command.
	Count   int
	Matches []services.Match
	Tasks   []*domain.Task
	Exit    bool
}

// Execute runs c against list. On error the list is unchanged.
func (c Command) Execute(list *services.TaskList) (Result, error) {
	result := Result{Kind: c.Kind}

	switch c.Kind {
	case KindAdd:
		task, err := c.add(list)
		if err != nil {
			return Result{}, err
		}
		result.Task = task

	case KindDelete:
		if c.Args == "" {
			return Result{}, errors.NewParseError(UsageDelete, c.Args)
		}
		rendered, err := list.Delete(c.Args)
		if err != nil {
			return Result{}, err
		}
		result.Rendered = rendered

	case KindMark, KindUnmark:
		if c.Args == "" {
			usage := UsageMark
			if c.Kind == KindUnmark {
				usage = UsageUnmark
			}
			return Result{}, errors.NewParseError(usage, c.Args)
		}
		rendered, err := list.MarkOrUnmark(c.Args, c.Kind == KindMark)
		if err != nil {
			return Result{}, err
		}
		result.Rendered = rendered

	case KindFind:
		result.Matches = list.Find(c.Args)

	case KindList:
		result.Tasks = list.All()

	case KindExit:
		result.Exit = true

	default:
		return Result{}, errors.NewParseError("unrecognized command", c.Kind.String())
	}

	result.Count = list.Size()
	return result, nil
}

func (c Command) add(list *services.TaskList) (*domain.Task, error) {
	switch c.TaskKind {
	case domain.KindTodo:
		return list.AddPlain(c.Args)
	case domain.KindDeadline:
		return list.AddDeadline(c.Args)
	case domain.KindEvent:
		return list.AddEvent(c.Args)
	default:
		return nil, errors.NewUnknownTaskKindError(c.TaskKind.String())
	}
}
