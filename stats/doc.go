// SPDX-License-Identifier: MIT

// Package stats is a toolkit of stateless descriptive and inferential
// statistics over []float64 samples.
//
// Every function has a fixed answer for degenerate input (nil, empty,
// singleton, constant), so callers never special-case them:
//
//	Mean, Median               → 0 for empty input
//	Variance, StandardDeviation,
//	Range                      → 0 for fewer than two values or a constant sample
//	Mode                       → core.Number, ReasonNoMode when no value repeats most,
//	                             ReasonNonFinite for NaN/±Inf input
//	QuartilesOf                → ok=false for fewer than four values
//	InterquartileRange         → core.Number, ReasonInsufficientData
//	Outliers                   → empty when quartiles are undefined
//	Correlation                → core.Number (mismatch, N<2, zero variance)
//	LinearRegression           → ok=false (mismatch, N<2, constant x)
//	CoefficientOfVariation     → core.Number (empty, zero mean)
//	MovingAverage              → nil for empty input or window > N,
//	                             ErrInvalidWindow for window ≤ 0
//	ZScore                     → core.Number (empty, zero deviation)
//	Describe                   → NoDataMessage for empty input
//
// "Constant" means every value equals the first exactly. It is tested directly
// rather than inferred from a float spread, since the mean of a constant
// sample like {0.1, 0.1, 0.1} does not round-trip.
//
// A result that cannot be computed from the data is a value (an undefined
// core.Number or a false ok flag), never an error. Errors are reserved for
// arguments no data could make valid, such as a non-positive window.
//
// Variance is the population variance (÷N) and StandardDeviation is its
// square root, so StandardDeviation(xs)² == Variance(xs).
//
// QuartilesOf and Percentile sort a copy and interpolate linearly at position
// p·(N−1); Q2 coincides with Median.
//
// Inputs are never mutated or retained. Functions share no state and are
// safe to call from any number of goroutines; SummarizeAll fans a batch of
// independent series out over an errgroup.
package stats
