// SPDX-License-Identifier: MIT

package core

// Reason explains why a Number carries no value.
// The zero Reason is Defined: the Number holds a finite value.
type Reason uint8

const (
	// Defined marks a Number that holds a finite value.
	Defined Reason = iota

	// ReasonNew marks a change measured against a zero base: the category is
	// new (or vanished into a negative amount) and has no percentage.
	ReasonNew

	// ReasonInsufficientData marks results that need more samples than given,
	// e.g. quartiles over fewer than four values.
	ReasonInsufficientData

	// ReasonNoMode marks a sample without a single most frequent value.
	ReasonNoMode

	// ReasonZeroVariance marks a denominator that is a zero spread.
	ReasonZeroVariance

	// ReasonZeroMean marks a ratio over a zero mean.
	ReasonZeroMean

	// ReasonLengthMismatch marks paired sequences of different lengths.
	ReasonLengthMismatch

	// ReasonEmpty marks an empty or nil input.
	ReasonEmpty

	// ReasonNonFinite marks a computation that produced NaN or ±Inf.
	ReasonNonFinite
)

var reasonNames = [...]string{
	Defined:                "defined",
	ReasonNew:              "new",
	ReasonInsufficientData: "insufficient data",
	ReasonNoMode:           "no mode",
	ReasonZeroVariance:     "zero variance",
	ReasonZeroMean:         "zero mean",
	ReasonLengthMismatch:   "length mismatch",
	ReasonEmpty:            "empty input",
	ReasonNonFinite:        "non-finite",
}

// String returns a stable lowercase label for r.
func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}

	return "unknown"
}

// Number is a float64 that may be undefined.
//
// The zero Number is a defined 0. Use Undefined to build the sentinel.
type Number struct {
	value  float64
	reason Reason
}

// NotAvailable is the rendering of an undefined Number.
const NotAvailable = "N/A"

// DefaultParallelism is the shared bound on concurrent batch work
// (compare.CompareAll, stats.SummarizeAll).
const DefaultParallelism = 4

const panicUndefinedDefined = "core: Undefined: reason must not be Defined"
