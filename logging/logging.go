// Package logging builds the process logger.
//
// Diagnostics go to stderr through logrus so stdout only ever carries the
// program's result.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultLevel keeps a normal run silent.
const DefaultLevel = "warn"

// New returns a text logger writing to w at the given level name
// ("debug", "info", "warn", ...).
func New(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})
	return l, nil
}

// Discard returns a logger that drops everything. Library code uses it when
// the caller supplies no logger.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
