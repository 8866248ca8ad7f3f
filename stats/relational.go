// SPDX-License-Identifier: MIT

package stats

import (
	"math"

	"github.com/katalvlaran/fiscus/core"
)

// Line is a least-squares fit y = Slope·x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 { return l.Slope*x + l.Intercept }

// pairCheck classifies paired input; Defined means the pair is usable.
func pairCheck(xs, ys []float64) core.Reason {
	switch {
	case len(xs) == 0 || len(ys) == 0:
		return core.ReasonEmpty
	case len(xs) != len(ys):
		return core.ReasonLengthMismatch
	case len(xs) < 2:
		return core.ReasonInsufficientData
	}

	return core.Defined
}

// centeredMoments returns Σ(x−x̄)², Σ(y−ȳ)² and Σ(x−x̄)(y−ȳ) over equal-length input.
func centeredMoments(xs, ys []float64) (sxx, syy, sxy float64) {
	mx, my := Mean(xs), Mean(ys)
	var dx, dy float64
	for i := range xs {
		dx, dy = xs[i]-mx, ys[i]-my
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}

	return sxx, syy, sxy
}

// Correlation returns the Pearson correlation coefficient of xs and ys.
//
// Undefined when either input is empty (ReasonEmpty), lengths differ
// (ReasonLengthMismatch), N<2 (ReasonInsufficientData) or either sequence is
// constant (ReasonZeroVariance). The result is clamped into [−1, 1].
func Correlation(xs, ys []float64) core.Number {
	if r := pairCheck(xs, ys); r != core.Defined {
		return core.Undefined(r)
	}

	if constant(xs) || constant(ys) {
		return core.Undefined(core.ReasonZeroVariance)
	}
	sxx, syy, sxy := centeredMoments(xs, ys)
	if sxx == 0 || syy == 0 {
		return core.Undefined(core.ReasonZeroVariance)
	}

	// Separate roots keep sxx·syy from overflowing for large magnitudes.
	r := sxy / (math.Sqrt(sxx) * math.Sqrt(syy))

	return core.Of(math.Max(-1, math.Min(1, r)))
}

// LinearRegression fits y = a·x + b by ordinary least squares.
// ok is false for empty or mismatched input, N<2, or when every x is equal.
func LinearRegression(xs, ys []float64) (line Line, ok bool) {
	if pairCheck(xs, ys) != core.Defined || constant(xs) {
		return Line{}, false
	}

	sxx, _, sxy := centeredMoments(xs, ys)
	if sxx == 0 {
		return Line{}, false
	}

	slope := sxy / sxx

	return Line{Slope: slope, Intercept: Mean(ys) - slope*Mean(xs)}, true
}
