// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"

	"github.com/katalvlaran/fiscus/core"
)

// CoefficientOfVariation returns StandardDeviation(xs) / Mean(xs).
// Undefined for empty input (ReasonEmpty) or a zero mean (ReasonZeroMean).
func CoefficientOfVariation(xs []float64) core.Number {
	if len(xs) == 0 {
		return core.Undefined(core.ReasonEmpty)
	}

	mu := Mean(xs)
	if mu == 0 {
		return core.Undefined(core.ReasonZeroMean)
	}

	return core.Of(StandardDeviation(xs) / mu)
}

// MovingAverage returns the mean of every contiguous window of the given
// size, N−window+1 values in order.
//
// window ≤ 0 is ErrInvalidWindow. Empty input or window > N yields nil
// without error: there is simply no complete window.
//
// Complexity: O(N·window); each window is averaged independently so rounding
// does not carry from one window into the next.
func MovingAverage(xs []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("window %d: %w", window, ErrInvalidWindow)
	}
	if len(xs) == 0 || window > len(xs) {
		return nil, nil
	}

	out := make([]float64, len(xs)-window+1)
	for i := range out {
		out[i] = Mean(xs[i : i+window])
	}

	return out, nil
}

// ZScore returns (x − Mean(xs)) / StandardDeviation(xs).
// Undefined for empty input (ReasonEmpty) or zero deviation (ReasonZeroVariance).
func ZScore(x float64, xs []float64) core.Number {
	if len(xs) == 0 {
		return core.Undefined(core.ReasonEmpty)
	}

	if constant(xs) {
		return core.Undefined(core.ReasonZeroVariance)
	}
	sd := StandardDeviation(xs)
	if sd == 0 {
		return core.Undefined(core.ReasonZeroVariance)
	}

	return core.Of((x - Mean(xs)) / sd)
}

// PercentChanges returns the period-over-period change of xs in percent,
// N−1 values. A zero base follows the comparator rules: 0 → 0 is 0%, and
// 0 → anything else is Undefined(ReasonNew).
func PercentChanges(xs []float64) []core.Number {
	if len(xs) < 2 {
		return nil
	}

	out := make([]core.Number, len(xs)-1)
	for i := 1; i < len(xs); i++ {
		prev, cur := xs[i-1], xs[i]
		switch {
		case prev != 0:
			out[i-1] = core.Of((cur - prev) / prev * 100)
		case cur == 0:
			out[i-1] = core.Of(0)
		default:
			out[i-1] = core.Undefined(core.ReasonNew)
		}
	}

	return out
}
