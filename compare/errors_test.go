// SPDX-License-Identifier: MIT

package compare_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fiscus/compare"
)

func TestErrorPriority(t *testing.T) {
	h := compare.History{2022: {}}

	// Year A is reported before year B.
	_, err := compare.New().CompareYears(h, 1999, 2030)
	require.ErrorIs(t, err, compare.ErrMissingYear)
	assert.Contains(t, err.Error(), "1999")
	assert.NotContains(t, err.Error(), "2030")

	// An undefined change is not comparable, whatever the cap.
	v, err := compare.NewValidator(1, compare.Exclusive)
	require.NoError(t, err)
	err = v.Check(compare.NewRecord("grants", decimal.Zero, d(1_000_000)))
	assert.ErrorIs(t, err, compare.ErrNotComparable)
	assert.NotErrorIs(t, err, compare.ErrChangeExceedsLimit)
}
