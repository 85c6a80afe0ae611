// Package parser turns one input line into a command.
package parser

import (
	"sort"
	"strings"

	"duke/internal/command"
	"duke/internal/domain"
	"duke/internal/errors"
)

type verbRule struct {
	// usage is reported when the argument requirement is not met
	usage   string
	takeArg bool
	build   func(args string) command.Command
}

var verbs = map[string]verbRule{
	"todo": {usage: command.UsageDescription, takeArg: true, build: func(a string) command.Command {
		return command.Add(domain.KindTodo, a)
	}},
	"deadline": {usage: command.UsageDescription, takeArg: true, build: func(a string) command.Command {
		return command.Add(domain.KindDeadline, a)
	}},
	"event": {usage: command.UsageDescription, takeArg: true, build: func(a string) command.Command {
		return command.Add(domain.KindEvent, a)
	}},
	"mark":   {usage: command.UsageMark, takeArg: true, build: command.Mark},
	"unmark": {usage: command.UsageUnmark, takeArg: true, build: command.Unmark},
	"delete": {usage: command.UsageDelete, takeArg: true, build: command.Delete},
	"find":   {usage: command.UsageFind, takeArg: true, build: command.Find},
	"list":   {usage: command.UsageList, build: func(string) command.Command { return command.List() }},
	"bye":    {usage: command.UsageBye, build: func(string) command.Command { return command.Exit() }},
}

// Verbs returns the recognized verbs in alphabetical order.
func Verbs() []string {
	out := make([]string, 0, len(verbs))
	for verb := range verbs {
		out = append(out, verb)
	}
	sort.Strings(out)
	return out
}

// Parse returns the command for line, or a parse error naming what is wrong.
// Argument text is passed on as is; deadline and event arguments are split
// by the task list.
func Parse(line string) (command.Command, error) {
	trimmed := strings.TrimSpace(line)
	verb := strings.Split(trimmed, " ")[0]

	rule, ok := verbs[verb]
	if !ok {
		return command.Command{}, errors.NewParseError("unrecognized command", line)
	}

	if !rule.takeArg {
		if trimmed != verb {
			return command.Command{}, errors.NewParseError(rule.usage, line)
		}
		return rule.build(""), nil
	}

	if trimmed == verb {
		return command.Command{}, errors.NewParseError(rule.usage, line)
	}
	return rule.build(trimmed[len(verb)+1:]), nil
}
