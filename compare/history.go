// SPDX-License-Identifier: MIT

package compare

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// History holds snapshots keyed by fiscal year.
type History map[int]Snapshot

// Years returns the years with a snapshot, ascending.
func (h History) Years() []int {
	years := make([]int, 0, len(h))
	for y := range h {
		years = append(years, y)
	}
	sort.Ints(years)

	return years
}

// Snapshot returns the snapshot of year, or ErrMissingYear.
func (h History) Snapshot(year int) (Snapshot, error) {
	s, ok := h[year]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrMissingYear, year)
	}

	return s, nil
}

// Series returns the amount of category in domain d for every year, in
// ascending year order. A year without the category contributes zero.
func (h History) Series(d Domain, category string) []decimal.Decimal {
	years := h.Years()
	out := make([]decimal.Decimal, len(years))
	for i, y := range years {
		out[i] = h[y][d][category]
	}

	return out
}

// TotalSeries returns the total of domain d for every year, ascending.
func (h History) TotalSeries(d Domain) []decimal.Decimal {
	years := h.Years()
	out := make([]decimal.Decimal, len(years))
	for i, y := range years {
		out[i] = h[y].Total(d)
	}

	return out
}

// Consecutive returns the pairs of adjacent years, ascending.
func (h History) Consecutive() []YearPair {
	years := h.Years()
	if len(years) < 2 {
		return nil
	}
	out := make([]YearPair, len(years)-1)
	for i := 1; i < len(years); i++ {
		out[i-1] = YearPair{A: years[i-1], B: years[i]}
	}

	return out
}

// CompareYears compares the snapshot of yearA with that of yearB.
// Either year missing from h yields ErrMissingYear and no report.
func (c *Comparator) CompareYears(h History, yearA, yearB int) (*Report, error) {
	a, err := h.Snapshot(yearA)
	if err != nil {
		return nil, err
	}
	b, err := h.Snapshot(yearB)
	if err != nil {
		return nil, err
	}
	c.opts.Logger.Debug().Int("year_a", yearA).Int("year_b", yearB).Msg("comparing years")

	return c.Compare(a, b), nil
}

// CompareAll compares every pair concurrently, at most Options.Parallelism
// at a time. The i-th report answers pairs[i]. The first error cancels the
// remaining work and is returned with a nil slice.
func (c *Comparator) CompareAll(ctx context.Context, h History, pairs []YearPair) ([]*Report, error) {
	for _, p := range pairs {
		if _, err := h.Snapshot(p.A); err != nil {
			return nil, err
		}
		if _, err := h.Snapshot(p.B); err != nil {
			return nil, err
		}
	}

	out := make([]*Report, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Parallelism)
	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rep, err := c.CompareYears(h, p.A, p.B)
			if err != nil {
				return err
			}
			out[i] = rep

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
