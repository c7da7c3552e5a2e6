// Package log defines the logging interface shared by the interpreter
// packages, and a logrus backed default.
package log

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface used throughout the module. A
// *logrus.Logger satisfies it.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a plain text logrus logger at info level.
func New() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// NewWithLevel returns the logger from New at the named level
// (e.g. "debug", "info", "error").
func NewWithLevel(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}
	l := New()
	l.SetLevel(lvl)
	return l, nil
}

// NewWithOutput returns the logger from NewWithLevel writing to w.
func NewWithOutput(w io.Writer, level string) (*logrus.Logger, error) {
	l, err := NewWithLevel(level)
	if err != nil {
		return nil, err
	}
	l.SetOutput(w)
	return l, nil
}
