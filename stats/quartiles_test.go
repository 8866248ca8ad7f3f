// SPDX-License-Identifier: MIT

package stats_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fiscus/core"
	"github.com/katalvlaran/fiscus/stats"
)

func TestQuartiles_Interpolated(t *testing.T) {
	q, ok := stats.QuartilesOf([]float64{4, 1, 3, 2})
	require.True(t, ok)
	assert.InDelta(t, 1.75, q.Q1, eps)
	assert.InDelta(t, 2.50, q.Q2, eps)
	assert.InDelta(t, 3.25, q.Q3, eps)
	assert.InDelta(t, 1.50, q.IQR(), eps)
}

func TestQuartiles_InsufficientData(t *testing.T) {
	for _, xs := range [][]float64{nil, {}, {1}, {1, 2}, {1, 2, 3}} {
		_, ok := stats.QuartilesOf(xs)
		assert.False(t, ok, "len=%d", len(xs))

		iqr := stats.InterquartileRange(xs)
		assert.Equal(t, core.ReasonInsufficientData, iqr.Reason())
		assert.Empty(t, stats.Outliers(xs))
	}
}

// TestQuartiles_Ascending checks Q1 ≤ Q2 ≤ Q3 and Q2 == Median over random samples.
func TestQuartiles_Ascending(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 300; i++ {
		xs := randomSample(r, 4+r.Intn(60))
		q, ok := stats.QuartilesOf(xs)
		require.True(t, ok)
		assert.LessOrEqual(t, q.Q1, q.Q2)
		assert.LessOrEqual(t, q.Q2, q.Q3)
		assert.InDelta(t, stats.Median(xs), q.Q2, 1e-9)
	}
}

func TestOutliers_TukeyFence(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}

	got := stats.Outliers(xs)
	assert.Equal(t, []float64{100}, got)
	for v := 1.0; v <= 9; v++ {
		assert.NotContains(t, got, v)
	}
}

func TestOutliers_NoneAndBothSides(t *testing.T) {
	assert.Empty(t, stats.Outliers([]float64{1, 2, 3, 4, 5}))
	assert.Equal(t, []float64{-100, 100}, stats.Outliers([]float64{-100, 10, 11, 12, 13, 14, 100}))
}

func TestPercentile(t *testing.T) {
	xs := []float64{10, 20, 30, 40, 50}

	for _, tc := range []struct {
		p, want float64
	}{
		{0, 10}, {0.5, 30}, {1, 50}, {0.9, 46},
	} {
		got, err := stats.Percentile(xs, tc.p)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got.Or(-1), eps, "p=%v", tc.p)
	}

	got, err := stats.Percentile(nil, 0.5)
	require.NoError(t, err)
	assert.Equal(t, core.ReasonEmpty, got.Reason())

	_, err = stats.Percentile(xs, 1.5)
	assert.ErrorIs(t, err, stats.ErrInvalidPercentile)
	_, err = stats.Percentile(xs, -0.1)
	assert.ErrorIs(t, err, stats.ErrInvalidPercentile)
}
