package sw

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mhr3/swalign/internal/dp"
)

// MaxThreads bounds Wavefront.Threads.
const MaxThreads = 4096

// Wavefront fills the matrix one anti-diagonal at a time. Each diagonal's
// rows are split into Threads contiguous chunks, one per worker goroutine,
// and a barrier separates consecutive diagonals. The workers are started
// and joined inside every Align call.
type Wavefront struct {
	Threads int
}

func (Wavefront) Name() string { return "wavefront" }

func (w Wavefront) Align(query, target []byte, scores Scores) (Result, error) {
	return w.align(query, target, scores, fillDiagonals)
}

// fillFunc computes worker wk's cells of every diagonal.
type fillFunc func(grid *scoreGrid, query, target []byte, p dp.Params, wk, threads int, bar *barrier) dp.Best

func (w Wavefront) align(query, target []byte, scores Scores, fill fillFunc) (Result, error) {
	if w.Threads < 1 || w.Threads > MaxThreads {
		return Result{}, fmt.Errorf("%w: wavefront threads %d outside [1, %d]", ErrInvalidConfig, w.Threads, MaxThreads)
	}
	p, err := prepare(query, target, scores)
	if err != nil {
		return Result{}, err
	}
	n, m := len(query), len(target)
	if n == 0 || m == 0 {
		return Result{}, nil
	}

	grid, err := newScoreGrid(n, m)
	if err != nil {
		return Result{}, allocError(err)
	}

	var (
		threads = w.Threads
		bests   = make([]dp.Best, threads)
		bar     = newBarrier(threads)
		g       errgroup.Group
	)
	for wk := 0; wk < threads; wk++ {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					bar.Break()
					err = fmt.Errorf("%w: wavefront worker %d: %v", ErrInternal, wk, r)
				}
			}()
			bests[wk] = fill(grid, query, target, p, wk, threads, bar)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var best dp.Best
	for _, b := range bests {
		best.Merge(b)
	}
	return traceResult(grid.source(query, target, p), query, target, best)
}

// fillDiagonals runs worker wk's share of every diagonal. It returns early,
// with a partial best, if the barrier breaks.
func fillDiagonals(grid *scoreGrid, query, target []byte, p dp.Params, wk, threads int, bar *barrier) dp.Best {
	n, m := len(query), len(target)
	h, stride := grid.h, grid.cols
	var best dp.Best
	for d := 2; d <= n+m; d++ {
		lo, hi := max(1, d-m), min(n, d-1)
		span := hi - lo + 1
		from, to := lo+wk*span/threads, lo+(wk+1)*span/threads
		for i := from; i < to; i++ {
			j := d - i
			at := i*stride + j
			v := dp.Score(h[at-stride-1], h[at-stride], h[at-1], query[i-1] == target[j-1], p)
			h[at] = v
			best.Offer(v, i, j)
		}
		if !bar.Wait() {
			break
		}
	}
	return best
}

// scoreGrid is a row-major H arena with the zero border, for fills that
// derive origins at traceback time.
type scoreGrid struct {
	cols int
	h    []int32
}

func newScoreGrid(n, m int) (*scoreGrid, error) {
	size, err := dp.Cells(n+1, m+1)
	if err != nil {
		return nil, err
	}
	return &scoreGrid{cols: m + 1, h: make([]int32, size)}, nil
}

func (g *scoreGrid) at(i, j int) int32 { return g.h[i*g.cols+j] }

func (g *scoreGrid) source(query, target []byte, p dp.Params) dp.Source {
	return dp.Recompute{H: g.at, Query: query, Target: target, Params: p}
}
