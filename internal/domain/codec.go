package domain

import (
	"regexp"
	"time"

	"duke/internal/errors"
)

const renderedUsage = "expected a rendered task such as [D][ ] description (by: Mar 15 2024)"

var (
	renderedPrefix = regexp.MustCompile(`^\[([TDE])\]\[([ X])\] (.+)$`)
	deadlineSuffix = regexp.MustCompile(`^(.+) \(by: ([A-Z][a-z]{2} \d{1,2} \d{4})\)$`)
	eventSuffix    = regexp.MustCompile(`^(.+) \(at: ([A-Z][a-z]{2} \d{1,2} \d{4})\)$`)
)

// ParseRendered is the inverse of Render: it rebuilds the task, including its
// completion state, from its canonical text form.
func ParseRendered(line string) (*Task, error) {
	m := renderedPrefix.FindStringSubmatch(line)
	if m == nil {
		return nil, errors.NewMalformedArgumentsError(renderedUsage, line)
	}
	kind, _ := ParseKind(m[1])
	done := m[2] == "X"
	rest := m[3]

	if kind == KindTodo {
		return Restore(kind, rest, time.Time{}, done)
	}

	suffix := deadlineSuffix
	if kind == KindEvent {
		suffix = eventSuffix
	}
	dm := suffix.FindStringSubmatch(rest)
	if dm == nil {
		return nil, errors.NewMalformedArgumentsError(renderedUsage, line)
	}
	date, err := time.Parse(DisplayDateLayout, dm[2])
	if err != nil {
		return nil, errors.NewDateFormatError(dm[2], err)
	}
	return Restore(kind, dm[1], date, done)
}
