// SPDX-License-Identifier: MIT

package compare

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/fiscus/core"
)

// DefaultParallelism bounds CompareAll when no explicit limit is given.
const DefaultParallelism = core.DefaultParallelism

const panicBadParallelism = "compare: WithParallelism requires n >= 1"

// Options configures a Comparator.
//
//	Logger:      receives debug events per compared domain and year pair.
//	             Default is zerolog.Nop().
//	Parallelism: maximum year pairs compared at once by CompareAll.
//	             Must be ≥ 1. Default is DefaultParallelism.
type Options struct {
	Logger      zerolog.Logger
	Parallelism int
}

// Option represents a functional option for configuring a Comparator.
type Option func(*Options)

// DefaultOptions returns Options with a silent logger and DefaultParallelism.
func DefaultOptions() Options {
	return Options{
		Logger:      zerolog.Nop(),
		Parallelism: DefaultParallelism,
	}
}

// WithLogger routes diagnostic events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithParallelism bounds the number of concurrent pair comparisons.
// Panics if n < 1.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(panicBadParallelism)
		}
		o.Parallelism = n
	}
}
