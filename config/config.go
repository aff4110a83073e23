// Package config loads run settings from defaults, an optional YAML file and
// the environment.
//
// Precedence, lowest first: Defaults, the YAML file named by ODI_CONFIG (or
// the explicit path), ODI_* environment variables. Command-line flags are
// applied on top by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/sghaida/odisort/logging"
	"github.com/sghaida/odisort/sorting"
)

// DefaultInput is the fixed demonstration input.
const DefaultInput = "31, 22, 13, 43, 15, 6, 37"

// DefaultStrategy names the strategy used when nothing else is configured.
const DefaultStrategy = "bubble"

// EnvInput is the environment variable holding the input sequence.
const EnvInput = "ODI_SORT_INPUT"

// ErrBlankStrategy is returned by Validate when no strategy name is set.
var ErrBlankStrategy = errors.New("config: strategy must not be blank")

// Config holds the settings for one run.
type Config struct {
	// Strategy names the sorting implementation ("bubble", "insertion").
	Strategy string `yaml:"strategy" env:"ODI_SORT_STRATEGY"`

	// Input is the sequence to sort, as comma and/or space separated ints.
	Input string `yaml:"input" env:"ODI_SORT_INPUT"`

	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level" env:"ODI_LOG_LEVEL"`
}

type fileRef struct {
	Path string `env:"ODI_CONFIG"`
}

// Defaults returns the configuration of a run with no file and no environment.
func Defaults() Config {
	return Config{
		Strategy: DefaultStrategy,
		Input:    DefaultInput,
		LogLevel: logging.DefaultLevel,
	}
}

// LoadFrom resolves and validates configuration from environ (see
// env.ToMap). path, when not empty, takes precedence over ODI_CONFIG.
func LoadFrom(path string, environ map[string]string) (Config, error) {
	cfg, err := Resolve(path, environ)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve merges defaults, file and environment without validating, so a
// caller can apply further overrides before calling Validate.
func Resolve(path string, environ map[string]string) (Config, error) {
	cfg := Defaults()
	opts := env.Options{Environment: environ}

	if path == "" {
		var ref fileRef
		if err := env.ParseWithOptions(&ref, opts); err != nil {
			return Config{}, fmt.Errorf("config: parse env: %w", err)
		}
		path = ref.Path
	}

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	// env skips empty values; a set but empty input means the empty sequence.
	if v, ok := environ[EnvInput]; ok && v == "" {
		cfg.Input = ""
	}

	cfg.Normalize()
	return cfg, nil
}

// mergeFile overlays the keys present in the YAML file at path.
func (c *Config) mergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	return nil
}

// Normalize trims and lower-cases the strategy and log level names.
func (c *Config) Normalize() {
	c.Strategy = strings.ToLower(strings.TrimSpace(c.Strategy))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
}

// Validate rejects blank strategies, unknown log levels and malformed input.
// Malformed input errors match sorting.ErrInvalidInput.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Strategy) == "" {
		return ErrBlankStrategy
	}
	if _, err := logging.New(c.LogLevel, io.Discard); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	if _, err := c.Sequence(); err != nil {
		return fmt.Errorf("config: input: %w", err)
	}
	return nil
}

// Sequence parses Input.
func (c Config) Sequence() (sorting.Sequence, error) {
	return sorting.ParseSequence(c.Input)
}
