// SPDX-License-Identifier: MIT

package stats

import (
	"math"
	"sort"

	"github.com/katalvlaran/fiscus/core"
)

// Sum returns the total of xs. The sum of nothing is 0.
func Sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}

	return s
}

// Mean returns the arithmetic average of xs, or 0 for empty input.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	return Sum(xs) / float64(len(xs))
}

// Variance returns the population variance Σ(x−μ)²/N, or 0 for N<2.
// A constant sample is exactly 0 even when its float mean rounds.
func Variance(xs []float64) float64 {
	n := len(xs)
	if n < 2 || constant(xs) {
		return 0
	}

	mu := Mean(xs)
	var sq, d float64
	for _, x := range xs {
		d = x - mu
		sq += d * d
	}

	return sq / float64(n)
}

// StandardDeviation returns sqrt(Variance(xs)), or 0 for N<2.
func StandardDeviation(xs []float64) float64 {
	return math.Sqrt(Variance(xs))
}

// Median returns the middle value of the sorted sample, or the average of the
// two middle values for even N. Empty input yields 0.
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}

	s := sortedCopy(xs)
	if n%2 == 1 {
		return s[n/2]
	}

	return (s[n/2-1] + s[n/2]) / 2
}

// Mode returns the value with the strictly highest frequency.
//
// A singleton returns its only value. Empty input, a sample where no value
// repeats, and a tie between several most frequent values all yield
// Undefined(ReasonNoMode). Any NaN or ±Inf in xs yields
// Undefined(ReasonNonFinite).
func Mode(xs []float64) core.Number {
	switch len(xs) {
	case 0:
		return core.Undefined(core.ReasonNoMode)
	case 1:
		return core.Of(xs[0])
	}
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return core.Undefined(core.ReasonNonFinite)
		}
	}

	counts := make(map[float64]int, len(xs))
	for _, x := range xs {
		counts[x]++
	}

	var best float64
	bestCount, ties := 0, 0
	for v, c := range counts {
		switch {
		case c > bestCount:
			best, bestCount, ties = v, c, 0
		case c == bestCount:
			ties++
		}
	}
	if bestCount < 2 || ties > 0 {
		return core.Undefined(core.ReasonNoMode)
	}

	return core.Of(best)
}

// Min returns the smallest value of xs, or 0 for empty input.
func Min(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}

	return m
}

// Max returns the largest value of xs, or 0 for empty input.
func Max(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}

	return m
}

// Range returns Max(xs) − Min(xs), or 0 for N<2.
func Range(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}

	return Max(xs) - Min(xs)
}

// constant reports whether every value of xs equals xs[0] exactly.
// Empty input is not constant.
func constant(xs []float64) bool {
	if len(xs) == 0 {
		return false
	}
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}

	return true
}

// sortedCopy returns an ascending copy; the caller's slice is left untouched.
func sortedCopy(xs []float64) []float64 {
	s := make([]float64, len(xs))
	copy(s, xs)
	sort.Float64s(s)

	return s
}
