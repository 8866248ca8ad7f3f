// SPDX-License-Identifier: MIT

// Package core provides the value types shared by the comparator and the
// statistics toolkit.
//
// Number
//
//	A Number is a tagged optional float64. It is either a defined, finite
//	value, or undefined together with the Reason why no value exists:
//
//	  core.Of(20)                        // defined: 20
//	  core.Undefined(core.ReasonNew)     // prior-year amount was zero
//	  core.Of(math.NaN())                // undefined: ReasonNonFinite
//
//	Undefined results are never collapsed into 0. A "0% change" and a
//	"not comparable" change are different facts, and Number keeps them apart
//	in every API that can produce either:
//
//	  v, ok := n.Value()   // ok == false for undefined
//	  n.Or(-1)             // explicit fallback chosen by the caller
//	  n.Float64()          // NaN when undefined, never 0
//	  n.String()           // "N/A" when undefined
//
// Amounts
//
//	Monetary amounts are github.com/shopspring/decimal values. Sums across
//	categories are exact; only percentage computations leave decimal space.
//	Sum, SumValues and ToFloats are the small helpers both the comparator and
//	its callers need.
//
// Concurrency:
//
//	All types are immutable values; nothing here holds shared state.
package core
