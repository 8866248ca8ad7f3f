// SPDX-License-Identifier: MIT

package core

import (
	"math"
	"strconv"
)

// Of returns a defined Number holding v.
// NaN and ±Inf are not values: they yield Undefined(ReasonNonFinite).
func Of(v float64) Number {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Number{reason: ReasonNonFinite}
	}

	return Number{value: v}
}

// Undefined returns the sentinel Number for reason r.
// Passing Defined is a programmer error and panics.
func Undefined(r Reason) Number {
	if r == Defined {
		panic(panicUndefinedDefined)
	}

	return Number{reason: r}
}

// Value returns the held value and whether n is defined.
func (n Number) Value() (float64, bool) {
	if n.reason != Defined {
		return 0, false
	}

	return n.value, true
}

// IsDefined reports whether n holds a value.
func (n Number) IsDefined() bool { return n.reason == Defined }

// Reason returns why n is undefined, or Defined.
func (n Number) Reason() Reason { return n.reason }

// Or returns the held value, or fallback when n is undefined.
func (n Number) Or(fallback float64) float64 {
	if n.reason != Defined {
		return fallback
	}

	return n.value
}

// Float64 returns the held value, or NaN when n is undefined.
func (n Number) Float64() float64 {
	if n.reason != Defined {
		return math.NaN()
	}

	return n.value
}

// Equal reports whether n and o are both undefined for the same reason, or
// both defined within eps of each other.
func (n Number) Equal(o Number, eps float64) bool {
	if n.reason != o.reason {
		return false
	}
	if n.reason != Defined {
		return true
	}

	return math.Abs(n.value-o.value) <= eps
}

// String renders n with the shortest exact representation, or NotAvailable.
func (n Number) String() string {
	if n.reason != Defined {
		return NotAvailable
	}

	return strconv.FormatFloat(n.value, 'g', -1, 64)
}

// MarshalJSON encodes a defined Number as a JSON number and an undefined one as null.
func (n Number) MarshalJSON() ([]byte, error) {
	if n.reason != Defined {
		return []byte("null"), nil
	}

	return strconv.AppendFloat(nil, n.value, 'g', -1, 64), nil
}
