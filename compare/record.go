// SPDX-License-Identifier: MIT

package compare

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/fiscus/core"
)

var hundred = decimal.NewFromInt(100)

// Record is the comparison of one category between two snapshots.
type Record struct {
	Category   string
	ValueA     decimal.Decimal
	ValueB     decimal.Decimal
	Difference decimal.Decimal // ValueB − ValueA, exact

	// Change is the percentage change from ValueA to ValueB, or
	// Undefined(ReasonNew) when ValueA is zero and ValueB is not.
	Change core.Number
}

// NewRecord compares amount a (base year) with amount b (target year).
func NewRecord(category string, a, b decimal.Decimal) Record {
	return Record{
		Category:   category,
		ValueA:     a,
		ValueB:     b,
		Difference: b.Sub(a),
		Change:     PercentageChange(a, b),
	}
}

// PercentageChange returns (b − a) / a × 100.
// A zero base gives 0 when b is zero too, and Undefined(ReasonNew) otherwise,
// whatever the sign of b.
func PercentageChange(a, b decimal.Decimal) core.Number {
	if a.IsZero() {
		if b.IsZero() {
			return core.Of(0)
		}

		return core.Undefined(core.ReasonNew)
	}

	return core.Of(b.Sub(a).Mul(hundred).Div(a).InexactFloat64())
}

// IsNew reports whether the category has no comparable base amount.
func (r Record) IsNew() bool {
	return r.Change.Reason() == core.ReasonNew
}

// Equal reports whether r and o describe the same comparison.
func (r Record) Equal(o Record) bool {
	return r.Category == o.Category &&
		r.ValueA.Equal(o.ValueA) &&
		r.ValueB.Equal(o.ValueB) &&
		r.Difference.Equal(o.Difference) &&
		r.Change.Equal(o.Change, 0)
}
