// Package ui turns command results and errors into the text shown to the user.
package ui

import (
	"fmt"
	"strings"

	"duke/internal/command"
	"duke/internal/config"
	"duke/internal/errors"
)

const errorPrefix = "OOPS!!! "

// Formatter renders command results. It holds no task state.
type Formatter struct {
	findNumbering string
}

// NewFormatter creates a formatter using the display settings
func NewFormatter(display config.DisplayConfig) *Formatter {
	numbering := display.FindNumbering
	if numbering == "" {
		numbering = config.FindNumberingOrdinal
	}
	return &Formatter{findNumbering: numbering}
}

// Welcome is shown when an interactive session starts.
func (f *Formatter) Welcome() string {
	return "Hello! I'm Duke\nWhat can I do for you?"
}

// Goodbye is shown when the session ends.
func (f *Formatter) Goodbye() string {
	return "Bye. Hope to see you again soon!"
}

// LoadingError is shown when the stored tasks could not be read.
func (f *Formatter) LoadingError() string {
	return errorPrefix + "Failed to load tasks because file cannot be opened!"
}

// FormatError renders err with the user-facing message for its kind.
func (f *Formatter) FormatError(err error) string {
	return errorPrefix + errors.GetUserMessage(err)
}

// Format renders a successful command result.
func (f *Formatter) Format(result command.Result) string {
	switch result.Kind {
	case command.KindAdd:
		return fmt.Sprintf("Got it. I've added this task:\n  %s\nNow you have %d tasks in the list.",
			result.Task.Render(), result.Count)

	case command.KindDelete:
		return fmt.Sprintf("Noted. I've removed this task:\n  %s\nNow you have %d tasks in the list",
			result.Rendered, result.Count)

	case command.KindMark:
		return "Nice! I've marked this task as done:\n" + result.Rendered

	case command.KindUnmark:
		return "OK, I've marked this task as not done yet:\n" + result.Rendered

	case command.KindList:
		if len(result.Tasks) == 0 {
			return "There are no tasks yet..."
		}
		lines := make([]string, len(result.Tasks))
		for i, task := range result.Tasks {
			lines[i] = fmt.Sprintf("%d.%s", i+1, task.Render())
		}
		return "Here are the tasks in your list\n" + strings.Join(lines, "\n")

	case command.KindFind:
		if len(result.Matches) == 0 {
			return "Sorry, there are no search results. Try a different term"
		}
		lines := make([]string, len(result.Matches))
		for i, match := range result.Matches {
			number := match.Ordinal
			if f.findNumbering == config.FindNumberingPosition {
				number = match.Position
			}
			lines[i] = fmt.Sprintf("%d.%s", number, match.Task.Render())
		}
		return "Here are the matching tasks in your list:\n" + strings.Join(lines, "\n")

	case command.KindExit:
		return f.Goodbye()

	default:
		return ""
	}
}
