// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"

	"github.com/katalvlaran/fiscus/core"
)

// MinQuartileSamples is the smallest sample size Quartiles accepts.
const MinQuartileSamples = 4

// TukeyK is the fence multiplier applied to the interquartile range.
const TukeyK = 1.5

// Quartiles are the 25th, 50th and 75th percentiles of a sample.
type Quartiles struct {
	Q1, Q2, Q3 float64
}

// IQR returns Q3 − Q1.
func (q Quartiles) IQR() float64 { return q.Q3 - q.Q1 }

// Fence returns the Tukey fence [Q1 − 1.5·IQR, Q3 + 1.5·IQR].
func (q Quartiles) Fence() (lo, hi float64) {
	iqr := q.IQR()

	return q.Q1 - TukeyK*iqr, q.Q3 + TukeyK*iqr
}

// Percentile returns the p-th percentile (p in [0, 1]) of xs by linear
// interpolation at position p·(N−1) of the sorted sample.
//
// Empty input yields Undefined(ReasonEmpty); p outside [0, 1] is ErrInvalidPercentile.
func Percentile(xs []float64, p float64) (core.Number, error) {
	if !(p >= 0 && p <= 1) {
		return core.Number{}, fmt.Errorf("percentile %v: %w", p, ErrInvalidPercentile)
	}
	if len(xs) == 0 {
		return core.Undefined(core.ReasonEmpty), nil
	}

	return core.Of(interpolate(sortedCopy(xs), p)), nil
}

// QuartilesOf returns Q1, Q2 and Q3 by linear interpolation.
// ok is false when xs holds fewer than MinQuartileSamples values; the zero
// Quartiles returned alongside must not be read as data.
func QuartilesOf(xs []float64) (q Quartiles, ok bool) {
	if len(xs) < MinQuartileSamples {
		return Quartiles{}, false
	}

	s := sortedCopy(xs)

	return Quartiles{
		Q1: interpolate(s, 0.25),
		Q2: interpolate(s, 0.50),
		Q3: interpolate(s, 0.75),
	}, true
}

// InterquartileRange returns Q3 − Q1, or Undefined(ReasonInsufficientData)
// when quartiles are undefined.
func InterquartileRange(xs []float64) core.Number {
	q, ok := QuartilesOf(xs)
	if !ok {
		return core.Undefined(core.ReasonInsufficientData)
	}

	return core.Of(q.IQR())
}

// Outliers returns the values of xs outside the Tukey fence, in input order.
// The result is empty when quartiles are undefined or every value lies
// within the fence.
func Outliers(xs []float64) []float64 {
	q, ok := QuartilesOf(xs)
	if !ok {
		return []float64{}
	}

	lo, hi := q.Fence()
	out := make([]float64, 0)
	for _, x := range xs {
		if x < lo || x > hi {
			out = append(out, x)
		}
	}

	return out
}

// interpolate reads percentile p from an ascending, non-empty slice.
func interpolate(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lower := int(pos)
	if lower >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lower)

	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}
