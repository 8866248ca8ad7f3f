// SPDX-License-Identifier: MIT

package stats

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fiscus/core"
)

// DefaultParallelism bounds SummarizeAll when the caller passes parallelism ≤ 0.
const DefaultParallelism = core.DefaultParallelism

// SummarizeAll summarizes every named series concurrently, at most
// parallelism at a time. Series are independent; the only error is the
// context's, in which case the partial result is discarded.
//
// The logger attached to ctx (zerolog.Ctx) receives one debug event per series.
func SummarizeAll(ctx context.Context, series map[string][]float64, parallelism int) (map[string]Summary, error) {
	if parallelism <= 0 {
		parallelism = DefaultParallelism
	}
	logger := zerolog.Ctx(ctx)

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		mu  sync.Mutex
		out = make(map[string]Summary, len(series))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for _, name := range names {
		name := name
		xs := series[name]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			s := Summarize(xs)
			logger.Debug().Str("series", name).Int("count", s.Count).Msg("summarized series")

			mu.Lock()
			out[name] = s
			mu.Unlock()

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
