// Package runner drives the sort → format → print pipeline.
//
// A Runner receives every capability through its constructor. There is no
// zero-value use and no field injection after construction: New refuses nil
// dependencies, so a *Runner that exists is always fully wired.
package runner

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sghaida/odisort/logging"
	"github.com/sghaida/odisort/printer"
	"github.com/sghaida/odisort/sorting"
)

var (
	// ErrNilStrategy is returned by New when no sorting.Strategy is given.
	ErrNilStrategy = errors.New("runner: nil sort strategy")

	// ErrNilPrinter is returned by New when no printer is given.
	ErrNilPrinter = errors.New("runner: nil printer")
)

// sample is the fixed demonstration input.
var sample = []int{31, 22, 13, 43, 15, 6, 37}

// SampleInput returns a fresh copy of the demonstration input.
func SampleInput() []int {
	out := make([]int, len(sample))
	copy(out, sample)
	return out
}

// Option customizes a Runner at construction time.
type Option func(*Runner)

// WithLogger sets the logger used for debug output. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// Runner sorts a sequence with an injected strategy and prints the result.
type Runner struct {
	strategy sorting.Strategy
	printer  *printer.Printer
	log      logrus.FieldLogger
}

// New builds a Runner from its dependencies (constructor injection).
func New(strategy sorting.Strategy, p *printer.Printer, opts ...Option) (*Runner, error) {
	if strategy == nil {
		return nil, ErrNilStrategy
	}
	if p == nil {
		return nil, ErrNilPrinter
	}

	r := &Runner{
		strategy: strategy,
		printer:  p,
		log:      logging.Discard(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r, nil
}

// Strategy returns the injected strategy.
func (r *Runner) Strategy() sorting.Strategy { return r.strategy }

// Run sorts input and writes the formatted result.
func (r *Runner) Run(input []int) error {
	log := r.log.WithFields(logrus.Fields{
		"strategy": sorting.NameOf(r.strategy),
		"size":     len(input),
	})
	log.Debug("sorting input")

	sorted := r.strategy.Sort(input)
	log.WithField("result", sorted).Debug("sorted")

	if err := r.printer.Print(sorted); err != nil {
		return fmt.Errorf("runner: print: %w", err)
	}
	return nil
}
