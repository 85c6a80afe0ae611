package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"duke/internal/domain"
	apperrors "duke/internal/errors"
	"duke/internal/parser"
	"duke/internal/services"
	"duke/internal/ui"

	"github.com/sirupsen/logrus"
)

// Session owns the task list for one run and wires it to storage and output.
type Session struct {
	list      *services.TaskList
	store     services.TaskStore
	formatter *ui.Formatter
	errors    *ErrorHandler
	logger    logrus.FieldLogger
	loadErr   error
}

// NewSession loads the stored tasks into a new session. When loading fails the
// session starts empty, is detached from store and LoadErr reports why. store
// may be nil for a session that never persists.
func NewSession(ctx context.Context, store services.TaskStore, formatter *ui.Formatter, logger logrus.FieldLogger) *Session {
	s := &Session{
		store:     store,
		formatter: formatter,
		errors:    NewErrorHandler(formatter, logger),
		logger:    logger,
	}

	var initial []*domain.Task
	if store != nil {
		tasks, err := store.Load(ctx)
		if err != nil {
			logger.WithError(err).Error("failed to load tasks")
			s.loadErr = err
			// rows that could not be read must never be overwritten by a save
			s.store = nil
		} else {
			initial = tasks
		}
	}
	s.list = services.NewTaskList(initial)

	logger.WithField("tasks", s.list.Size()).Debug("session started")
	return s
}

// LoadErr returns the error from loading stored tasks, if any.
func (s *Session) LoadErr() error {
	return s.loadErr
}

// Tasks returns the current tasks in list order.
func (s *Session) Tasks() []*domain.Task {
	return s.list.All()
}

// Handle runs one input line and returns the text to show and whether the
// session should end.
func (s *Session) Handle(ctx context.Context, line string) (string, bool) {
	output, exit, _ := s.Process(ctx, line)
	return output, exit
}

// Process is Handle that also returns the error behind a failure message.
func (s *Session) Process(ctx context.Context, line string) (string, bool, error) {
	cmd, err := parser.Parse(line)
	if err != nil {
		return s.errors.Report("parse", err), false, err
	}

	log := s.logger.WithField("command", cmd.Kind.String())
	log.WithField("args", cmd.Args).Debug("executing command")

	result, err := cmd.Execute(s.list)
	if err != nil {
		return s.errors.Report(cmd.Kind.String(), err), false, err
	}

	if cmd.Mutates() {
		if err := s.save(ctx); err != nil {
			return s.errors.Report("save tasks", err), false, err
		}
	}

	return s.formatter.Format(result), result.Exit, nil
}

func (s *Session) save(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(ctx, s.list.All()); err != nil {
		return err
	}
	s.logger.WithField("tasks", s.list.Size()).Debug("tasks saved")
	return nil
}

// Import parses rendered task lines and appends them to the list. Blank lines
// are skipped. Nothing is appended unless every line parses.
func (s *Session) Import(ctx context.Context, lines []string) (int, error) {
	var tasks []*domain.Task
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		task, err := domain.ParseRendered(line)
		if err != nil {
			if appErr, ok := apperrors.AsAppError(err); ok {
				return 0, appErr.WithContext("line", i+1)
			}
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		tasks = append(tasks, task)
	}

	s.list.Append(tasks...)
	if err := s.save(ctx); err != nil {
		return 0, err
	}
	return len(tasks), nil
}

// Run reads commands from in one line at a time, writing each response to
// out, until bye, end of input or ctx is done. A session whose load failed
// shows the loading error and returns LoadErr without reading any input.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, s.formatter.Welcome())
	if s.loadErr != nil {
		fmt.Fprintln(out, s.formatter.LoadingError())
		return s.loadErr
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		output, exit := s.Handle(ctx, scanner.Text())
		fmt.Fprintln(out, output)
		if exit {
			return nil
		}
	}
	return scanner.Err()
}

