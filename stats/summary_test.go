// SPDX-License-Identifier: MIT

package stats_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fiscus/core"
	"github.com/katalvlaran/fiscus/stats"
)

func TestSummarize_Empty(t *testing.T) {
	for _, xs := range [][]float64{nil, {}} {
		s := stats.Summarize(xs)
		assert.True(t, s.Empty())
		assert.Equal(t, stats.NoDataMessage, s.Text)
		assert.Equal(t, stats.NoDataMessage, stats.Describe(xs))
		assert.Nil(t, s.Quartiles)
		assert.False(t, s.IQR.IsDefined())
		assert.False(t, s.Mode.IsDefined())
	}
}

func TestSummarize_Values(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}
	s := stats.Summarize(xs)

	assert.Equal(t, 10, s.Count)
	assert.InDelta(t, 14.5, s.Mean, eps)
	assert.InDelta(t, 5.5, s.Median, eps)
	assert.Equal(t, core.ReasonNoMode, s.Mode.Reason())
	assert.InDelta(t, 99.0, s.Range, eps)
	require.NotNil(t, s.Quartiles)
	assert.InDelta(t, 3.25, s.Quartiles.Q1, eps)
	assert.InDelta(t, 7.75, s.Quartiles.Q3, eps)
	assert.InDelta(t, 4.5, s.IQR.Or(0), eps)
	assert.Equal(t, []float64{100}, s.Outliers)
	assert.Contains(t, s.Text, "Count: 10")
	assert.Contains(t, s.Text, "Outliers: 100.00")
}

func TestSummarize_SmallSampleText(t *testing.T) {
	s := stats.Summarize([]float64{5, 5})

	assert.Nil(t, s.Quartiles)
	assert.Contains(t, s.Text, "Quartiles: insufficient data")
	assert.Contains(t, s.Text, "Mode: 5.00")
	assert.Equal(t, s.Text, s.String())
}

func TestSummarizeAll(t *testing.T) {
	series := map[string][]float64{
		"taxes":  {1000, 1200, 1100},
		"health": {300, 310, 320, 330},
		"empty":  nil,
	}
	ctx := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel).WithContext(context.Background())

	got, err := stats.SummarizeAll(ctx, series, 2)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, stats.Summarize(series["taxes"]), got["taxes"])
	assert.Equal(t, 4, got["health"].Count)
	assert.True(t, got["empty"].Empty())
}

func TestSummarizeAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := stats.SummarizeAll(ctx, map[string][]float64{"a": {1, 2}}, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}
