// Package logging builds the logrus logger shared by the CLI and storage.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DebugEnvVar forces debug logging when set to any non-empty value.
const DebugEnvVar = "DUKE_DEBUG"

// DebugEnabled returns true if debug mode is enabled via DUKE_DEBUG
func DebugEnabled() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// Options configures New.
type Options struct {
	Level   string
	Verbose bool
	// Output defaults to os.Stderr so logs never mix with command output.
	Output io.Writer
}

// New creates a text logger. Verbose or DUKE_DEBUG raise the level to debug.
func New(opts Options) (*logrus.Logger, error) {
	logger := logrus.New()

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	level := logrus.InfoLevel
	if opts.Level != "" {
		lvl, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		level = lvl
	}
	if opts.Verbose || DebugEnabled() {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	return logger, nil
}

// Discard returns a logger that writes nothing.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// NewSessionID returns a fresh identifier for one run of the tool.
func NewSessionID() string {
	return uuid.NewString()
}

// WithSession tags every entry from logger with the session id.
func WithSession(logger logrus.FieldLogger, sessionID string) *logrus.Entry {
	if sessionID == "" {
		return logger.WithFields(logrus.Fields{})
	}
	return logger.WithField("session", sessionID)
}
