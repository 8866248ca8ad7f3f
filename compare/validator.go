// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"
	"math"
)

// DefaultMaxChange is the default cap, in percent, on a single category change.
const DefaultMaxChange = 50.0

// Boundary selects whether a change exactly at the cap is accepted.
type Boundary uint8

const (
	// Inclusive accepts |change| == cap.
	Inclusive Boundary = iota
	// Exclusive rejects |change| == cap.
	Exclusive
)

// String returns "inclusive" or "exclusive".
func (b Boundary) String() string {
	if b == Exclusive {
		return "exclusive"
	}

	return "inclusive"
}

// Validator rejects records whose absolute percentage change exceeds a cap.
// The zero Validator is not usable; build one with NewValidator.
type Validator struct {
	maxChange float64
	boundary  Boundary
}

// NewValidator returns a Validator capping |change| at maxChange percent.
// Returns ErrInvalidThreshold if maxChange is not positive and finite.
func NewValidator(maxChange float64, boundary Boundary) (Validator, error) {
	if math.IsNaN(maxChange) || math.IsInf(maxChange, 0) || maxChange <= 0 {
		return Validator{}, fmt.Errorf("%w: %v", ErrInvalidThreshold, maxChange)
	}

	return Validator{maxChange: maxChange, boundary: boundary}, nil
}

// MaxChange returns the cap in percent.
func (v Validator) MaxChange() float64 { return v.maxChange }

// Boundary returns the cap boundary mode.
func (v Validator) Boundary() Boundary { return v.boundary }

// Allows reports whether a change of pct percent is within the cap.
func (v Validator) Allows(pct float64) bool {
	abs := math.Abs(pct)
	if v.boundary == Exclusive {
		return abs < v.maxChange
	}

	return abs <= v.maxChange
}

// Check returns nil when r's change is within the cap. A change over the cap
// wraps ErrChangeExceedsLimit; an undefined change wraps ErrNotComparable.
func (v Validator) Check(r Record) error {
	pct, ok := r.Change.Value()
	if !ok {
		return fmt.Errorf("%q: %w (%s)", r.Category, ErrNotComparable, r.Change.Reason())
	}
	if !v.Allows(pct) {
		return fmt.Errorf("%q: %.2f%% over %s cap %.2f%%: %w",
			r.Category, pct, v.boundary, v.maxChange, ErrChangeExceedsLimit)
	}

	return nil
}
