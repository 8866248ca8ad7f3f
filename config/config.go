// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/fiscus/compare"
	"github.com/katalvlaran/fiscus/core"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FISCUS"

// Default setting values.
const (
	DefaultBoundary = "inclusive"
	DefaultLogLevel = "info"
)

// ErrInvalidConfig wraps every problem reported by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds engine settings.
type Config struct {
	Validation Validation `mapstructure:"validation"`
	// Parallelism bounds both compare.Comparator.CompareAll and stats.SummarizeAll.
	Parallelism int    `mapstructure:"parallelism"`
	LogLevel    string `mapstructure:"log_level"`
}

// Validation configures the per-category change cap.
type Validation struct {
	MaxChangePercent float64 `mapstructure:"max_change_percent"`
	Boundary         string  `mapstructure:"boundary"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Validation: Validation{
			MaxChangePercent: compare.DefaultMaxChange,
			Boundary:         DefaultBoundary,
		},
		Parallelism: core.DefaultParallelism,
		LogLevel:    DefaultLogLevel,
	}
}

// Load reads settings of the given format ("yaml", "json", "toml") from r,
// applies FISCUS_ environment overrides and validates the result.
// A nil r loads defaults and environment only.
func Load(r io.Reader, format string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if r != nil {
		v.SetConfigType(format)
		if err := v.ReadConfig(r); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", format, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("validation.max_change_percent", d.Validation.MaxChangePercent)
	v.SetDefault("validation.boundary", d.Validation.Boundary)
	v.SetDefault("parallelism", d.Parallelism)
	v.SetDefault("log_level", d.LogLevel)
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []string

	m := c.Validation.MaxChangePercent
	if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
		problems = append(problems, fmt.Sprintf("validation.max_change_percent %v: must be positive", m))
	}
	if _, err := parseBoundary(c.Validation.Boundary); err != nil {
		problems = append(problems, err.Error())
	}
	if c.Parallelism < 1 {
		problems = append(problems, fmt.Sprintf("parallelism %d: must be at least 1", c.Parallelism))
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		problems = append(problems, fmt.Sprintf("log_level %q: unknown level", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}

func parseBoundary(s string) (compare.Boundary, error) {
	switch strings.ToLower(s) {
	case "", "inclusive":
		return compare.Inclusive, nil
	case "exclusive":
		return compare.Exclusive, nil
	default:
		return 0, fmt.Errorf("validation.boundary %q: must be inclusive or exclusive", s)
	}
}

// Validator builds the category change validator.
func (c Config) Validator() (compare.Validator, error) {
	b, err := parseBoundary(c.Validation.Boundary)
	if err != nil {
		return compare.Validator{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return compare.NewValidator(c.Validation.MaxChangePercent, b)
}

// Logger returns a JSON logger writing to w at the configured level.
// An unparsable level falls back to info.
func (c Config) Logger(w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// ComparatorOptions returns the compare options for these settings.
// A non-positive parallelism is left at the compare default.
func (c Config) ComparatorOptions(logger zerolog.Logger) []compare.Option {
	opts := []compare.Option{compare.WithLogger(logger)}
	if c.Parallelism >= 1 {
		opts = append(opts, compare.WithParallelism(c.Parallelism))
	}

	return opts
}
