package cli

import (
	"fmt"

	"duke/internal/errors"
	"duke/internal/ui"

	"github.com/sirupsen/logrus"
)

// ErrorHandler provides centralized error handling for the session and subcommands
type ErrorHandler struct {
	formatter *ui.Formatter
	logger    logrus.FieldLogger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(formatter *ui.Formatter, logger logrus.FieldLogger) *ErrorHandler {
	return &ErrorHandler{formatter: formatter, logger: logger}
}

// Report logs err when it is not a plain input mistake and returns the text
// shown to the user.
func (eh *ErrorHandler) Report(operation string, err error) string {
	eh.log(operation, err)
	return eh.formatter.FormatError(err)
}

// Handle returns an error carrying the user-friendly message for a failed subcommand
func (eh *ErrorHandler) Handle(operation string, err error) error {
	eh.log(operation, err)

	if appErr, ok := errors.AsAppError(err); ok {
		message := errors.GetUserMessage(err)
		if line, ok := appErr.GetContext("line"); ok {
			message = fmt.Sprintf("line %v: %s", line, message)
		}
		return fmt.Errorf("failed to %s: %s", operation, message)
	}

	// Fallback for unknown errors
	return fmt.Errorf("failed to %s: %w", operation, err)
}

func (eh *ErrorHandler) log(operation string, err error) {
	entry := eh.logger.WithError(err).WithField("operation", operation)
	if appErr, ok := errors.AsAppError(err); ok {
		entry = entry.WithFields(logrus.Fields(appErr.Fields()))
	} else {
		entry = entry.WithField("code", errors.GetErrorCode(err))
	}
	if errors.ShouldLogError(err) {
		entry.Error("operation failed")
	} else {
		entry.Debug("input rejected")
	}
}
