// SPDX-License-Identifier: MIT

package core

import "github.com/shopspring/decimal"

// Sum adds amounts exactly. The sum of nothing is zero.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}

	return total
}

// SumValues adds every amount of a category map exactly.
func SumValues(values map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}

	return total
}

// ToFloats converts amounts into float64 samples for statistical use.
func ToFloats(amounts []decimal.Decimal) []float64 {
	if len(amounts) == 0 {
		return nil
	}

	out := make([]float64, len(amounts))
	for i, a := range amounts {
		out[i] = a.InexactFloat64()
	}

	return out
}
