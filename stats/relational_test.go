// SPDX-License-Identifier: MIT

package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fiscus/core"
	"github.com/katalvlaran/fiscus/stats"
)

func TestCorrelation_Perfect(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}

	pos := stats.Correlation(xs, []float64{2, 4, 6, 8, 10})
	require.True(t, pos.IsDefined())
	assert.InDelta(t, 1.0, pos.Or(0), eps)

	neg := stats.Correlation(xs, []float64{5, 4, 3, 2, 1})
	require.True(t, neg.IsDefined())
	assert.InDelta(t, -1.0, neg.Or(0), eps)
}

func TestCorrelation_Undefined(t *testing.T) {
	cases := []struct {
		name   string
		xs, ys []float64
		reason core.Reason
	}{
		{"nil", nil, []float64{1, 2}, core.ReasonEmpty},
		{"length mismatch", []float64{1, 2, 3}, []float64{1, 2}, core.ReasonLengthMismatch},
		{"single pair", []float64{1}, []float64{2}, core.ReasonInsufficientData},
		{"constant x", []float64{3, 3, 3}, []float64{1, 2, 3}, core.ReasonZeroVariance},
		{"constant y", []float64{1, 2, 3}, []float64{4, 4, 4}, core.ReasonZeroVariance},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stats.Correlation(tc.xs, tc.ys)
			assert.False(t, got.IsDefined())
			assert.Equal(t, tc.reason, got.Reason())
		})
	}
}

func TestLinearRegression_RecoversLine(t *testing.T) {
	xs := []float64{-2, 0, 1, 3, 7, 10}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 2*x + 1
	}

	line, ok := stats.LinearRegression(xs, ys)
	require.True(t, ok)
	assert.InDelta(t, 2.0, line.Slope, eps)
	assert.InDelta(t, 1.0, line.Intercept, eps)
	assert.InDelta(t, 41.0, line.At(20), eps)
}

func TestLinearRegression_Absent(t *testing.T) {
	for name, pair := range map[string][2][]float64{
		"nil":       {nil, nil},
		"mismatch":  {{1, 2, 3}, {1, 2}},
		"single":    {{1}, {1}},
		"constantX": {{2, 2, 2}, {1, 5, 9}},
	} {
		_, ok := stats.LinearRegression(pair[0], pair[1])
		assert.False(t, ok, name)
	}
}
