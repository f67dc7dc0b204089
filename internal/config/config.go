// Package config holds the run configuration of the review exporter.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/transreview/pkg/logger"
)

// StdoutPath selects standard output as the review file destination.
const StdoutPath = "-"

// Config describes one conversion run. Values come from the environment
// and may be overridden by command-line flags.
type Config struct {
	Input      string `env:"TRANSREVIEW_INPUT" envDefault:"translations.json"`
	Output     string `env:"TRANSREVIEW_OUTPUT" envDefault:"translation_review.csv"`
	SourceLang string `env:"TRANSREVIEW_SOURCE_LANG" envDefault:"en"`
	TargetLang string `env:"TRANSREVIEW_TARGET_LANG" envDefault:"id"`
	Verbose    bool   `env:"TRANSREVIEW_VERBOSE" envDefault:"false"`

	Sentry logger.SentryConfig
}

// Load reads Config from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads Config from the given variables instead of the process
// environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// ToStdout reports whether the review file goes to standard output.
func (c Config) ToStdout() bool {
	return c.Output == StdoutPath
}
