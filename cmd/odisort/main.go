package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/sghaida/odisort/app"
	"github.com/sghaida/odisort/config"
	"github.com/sghaida/odisort/logging"
)

func main() {
	os.Exit(run(os.Args[1:], env.ToMap(os.Environ()), os.Stdout, os.Stderr))
}

// options holds the command-line overrides.
type options struct {
	configPath string
	strategy   string
	input      string
	logLevel   string
	verbose    bool
}

// runError marks failures that happen after flags were accepted.
type runError struct{ err error }

func (e *runError) Error() string { return e.err.Error() }
func (e *runError) Unwrap() error { return e.err }

// run executes the command and returns the process exit code.
// It exists separately from main to allow testing without os.Exit.
func run(args []string, environ map[string]string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(environ, stdout, stderr)
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	_, _ = fmt.Fprintln(stderr, "odisort:", err)
	var re *runError
	if errors.As(err, &re) {
		return 1
	}
	return 2
}

func newRootCommand(environ map[string]string, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "odisort",
		Short:         "Sort a sequence through an explicitly wired strategy",
		Long:          "Sorts the configured sequence (by default 31, 22, 13, 43, 15, 6, 37) and prints it comma separated.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := execute(cmd, opts, environ, stdout, stderr); err != nil {
				return &runError{err: err}
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "YAML config file (overrides ODI_CONFIG)")
	f.StringVar(&opts.strategy, "strategy", "", "sort strategy: bubble or insertion")
	f.StringVar(&opts.input, "input", "", `sequence to sort, e.g. "3, 1, 2"`)
	f.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	return cmd
}

// execute loads config, applies flag overrides, wires the app and runs it.
func execute(cmd *cobra.Command, opts *options, environ map[string]string, stdout, stderr io.Writer) error {
	cfg, err := config.Resolve(opts.configPath, environ)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("strategy") {
		cfg.Strategy = opts.strategy
	}
	if flags.Changed("input") {
		cfg.Input = opts.input
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, stderr)
	if err != nil {
		return err
	}

	a, err := app.Build(cfg, stdout, logger)
	if err != nil {
		return err
	}
	return a.Run()
}
