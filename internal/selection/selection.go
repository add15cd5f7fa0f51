// Package selection picks test cases out of a listing with filter queries
// and reports overlapping queries.
package selection

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/roach88/ctsq/internal/compare"
	"github.com/roach88/ctsq/internal/query"
)

// DefaultChunkSize is the number of cases one worker compares per task.
const DefaultChunkSize = 256

// Options tunes Select. The zero value uses compare.Default, one worker
// per CPU and DefaultChunkSize.
type Options struct {
	Comparator compare.Comparator
	Workers    int
	ChunkSize  int
}

func (o Options) withDefaults() Options {
	if o.Comparator.ParamEqual == nil {
		o.Comparator = compare.Default
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = DefaultChunkSize
	}
	return o
}

// Matches reports whether filter selects q: the two are Equal or filter
// strictly contains q.
func Matches(filter, q query.Query) bool {
	return matches(compare.Default, filter, q)
}

func matches(c compare.Comparator, filter, q query.Query) bool {
	return c.Queries(filter, q).Contains()
}

// MatchesAny reports whether any of filters selects q.
func MatchesAny(filters []query.Query, q query.Query) bool {
	return matchesAny(compare.Default, filters, q)
}

func matchesAny(c compare.Comparator, filters []query.Query, q query.Query) bool {
	for _, f := range filters {
		if matches(c, f, q) {
			return true
		}
	}
	return false
}

// Select returns the cases selected by at least one filter, in input order.
//
// Cases are compared in chunks on a bounded pool of goroutines. Select
// returns ctx.Err() if ctx is cancelled before every chunk is done.
func Select(ctx context.Context, filters, cases []query.Query, opts Options) ([]query.Query, error) {
	opts = opts.withDefaults()
	if len(filters) == 0 || len(cases) == 0 {
		return nil, ctx.Err()
	}

	selected := make([]bool, len(cases))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for start := 0; start < len(cases); start += opts.ChunkSize {
		end := min(start+opts.ChunkSize, len(cases))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gCtx.Err(); err != nil {
					return err
				}
				selected[i] = matchesAny(opts.Comparator, filters, cases[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []query.Query
	for i, ok := range selected {
		if ok {
			out = append(out, cases[i])
		}
	}

	slog.Debug("selected cases",
		"filters", len(filters),
		"cases", len(cases),
		"selected", len(out))

	return out, nil
}
