// Package app is the composition root: it decides which implementations are
// used and wires them together by hand.
package app

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sghaida/odisort/config"
	"github.com/sghaida/odisort/di"
	"github.com/sghaida/odisort/logging"
	"github.com/sghaida/odisort/printer"
	"github.com/sghaida/odisort/runner"
	"github.com/sghaida/odisort/sorting"
)

// Keys under which Build records what it wired. All three are required.
const (
	KeyStrategy di.DependencyKey = "strategy"
	KeyPrinter  di.DependencyKey = "printer"
	KeyRunner   di.DependencyKey = "runner"
)

// Strategy names accepted by SelectStrategy (case-insensitive).
const (
	StrategyBubble    = "bubble"
	StrategyInsertion = "insertion"
)

// UnknownStrategyError is returned for a strategy name with no implementation.
type UnknownStrategyError struct{ Name string }

// Error implements the error interface.
func (e *UnknownStrategyError) Error() string {
	return "app: unknown sort strategy " + strconv.Quote(e.Name) +
		" (want " + StrategyBubble + " or " + StrategyInsertion + ")"
}

// ErrNilRunner is returned when an App has no runner.
var ErrNilRunner = errors.New("app: nil runner")

// SelectStrategy picks the implementation for name, ignoring case and
// surrounding space. This switch is the only place where the choice between
// implementations is made.
func SelectStrategy(name string) (sorting.Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyBubble:
		return sorting.NewBubble(), nil
	case StrategyInsertion:
		return sorting.NewInsertion(), nil
	default:
		return nil, &UnknownStrategyError{Name: name}
	}
}

// App is the fully wired program. Build it with New or Build.
type App struct {
	runner *runner.Runner
	input  sorting.Sequence
	wired  []di.DependencyKey
}

// New returns an App that sorts input with r. A nil runner is rejected.
func New(r *runner.Runner, input []int) (*App, error) {
	if r == nil {
		return nil, ErrNilRunner
	}
	return &App{runner: r, input: sorting.Sequence(input).Clone()}, nil
}

// Runner returns the runner the App was built with.
func (a *App) Runner() *runner.Runner { return a.runner }

// Input returns a copy of the configured input.
func (a *App) Input() sorting.Sequence { return a.input.Clone() }

// Wired returns the keys Build recorded, sorted. It is empty for an App
// made with New.
func (a *App) Wired() []di.DependencyKey {
	return append([]di.DependencyKey(nil), a.wired...)
}

// Run sorts and prints the configured input. An App that was not built with
// New or Build returns ErrNilRunner.
func (a *App) Run() error {
	if a == nil || a.runner == nil {
		return ErrNilRunner
	}
	return a.runner.Run(a.input)
}

// Build wires an App from cfg. The sorted output goes to stdout; the logger
// is shared with the runner and defaults to a discarding one.
//
// Every dependency is recorded on a di.Wiring, checked with Require, and the
// App is assembled from the resolved runner.
func Build(cfg config.Config, stdout io.Writer, logger logrus.FieldLogger) (*App, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	input, err := cfg.Sequence()
	if err != nil {
		return nil, fmt.Errorf("app: input: %w", err)
	}

	strategy, err := SelectStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	p := printer.New(stdout)
	r, err := runner.New(strategy, p, runner.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	w := di.NewWiring()
	for _, rec := range []error{
		di.Record(w, KeyStrategy, strategy),
		di.Record(w, KeyPrinter, p),
		di.Record(w, KeyRunner, r),
	} {
		if rec != nil {
			return nil, fmt.Errorf("app: wiring: %w", rec)
		}
	}

	a, err := assemble(w, input)
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"strategy": sorting.NameOf(strategy),
		"wired":    a.wired,
	}).Debug("app wired")

	return a, nil
}

// assemble checks that w holds every required dependency and builds the App
// from the recorded runner.
func assemble(w *di.Wiring, input []int) (*App, error) {
	if err := w.Require(KeyStrategy, KeyPrinter, KeyRunner); err != nil {
		return nil, fmt.Errorf("app: wiring: %w", err)
	}
	r, err := di.Resolve[*runner.Runner](w, KeyRunner)
	if err != nil {
		return nil, fmt.Errorf("app: wiring: %w", err)
	}

	a, err := New(r, input)
	if err != nil {
		return nil, err
	}
	a.wired = w.Keys()
	return a, nil
}
