// SPDX-License-Identifier: MIT
// Package stats: sentinel error set.
// Errors here are reserved for caller contract violations (a bad window, a
// percentile outside [0, 1]). Data conditions such as too few samples, zero
// spread or a zero mean are never errors: they come back as an undefined
// core.Number (or ok=false) so a batch over many series never aborts.

package stats

import "errors"

// NOTE ON NAMING & WRAPPING
// -------------------------
// Every message is prefixed with "stats: ..." for easy grepping. Functions
// wrap the sentinel with the offending argument, fmt.Errorf("window %d: %w",
// ...), so callers match with errors.Is and never by message.
//
// ERROR PRIORITY (enforced in tests):
// argument validation first (ErrInvalidWindow, ErrInvalidPercentile), then
// data conditions as core.Number reasons: ReasonEmpty -> ReasonLengthMismatch
// -> ReasonInsufficientData -> ReasonZeroVariance / ReasonZeroMean.
// SummarizeAll returns only the context's error.

var (
	// ErrInvalidWindow indicates a moving-average window that is not positive.
	// Empty input or a window longer than the input is not an error.
	ErrInvalidWindow = errors.New("stats: window must be positive")

	// ErrInvalidPercentile indicates a percentile outside [0, 1] (or NaN).
	ErrInvalidPercentile = errors.New("stats: percentile must be within [0, 1]")
)
