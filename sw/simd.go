package sw

import (
	"os"

	"github.com/mhr3/swalign/internal/bytealg"
	"github.com/mhr3/swalign/internal/dp"
)

// noSIMDEnv forces the generic kernel when set to a non-empty value.
const noSIMDEnv = "SWALIGN_NO_SIMD"

var lanes = selectKernel()

func selectKernel() laneKernel {
	if os.Getenv(noSIMDEnv) != "" {
		return kernel8
	}
	if ks := archKernels(); len(ks) > 0 {
		return ks[0]
	}
	return kernel8
}

// LaneWidth returns the number of cells the SIMD engine evaluates per group.
func LaneWidth() int { return lanes.width }

// LaneKernel names the lane kernel chosen for this CPU.
func LaneKernel() string { return lanes.name }

// SIMD evaluates each anti-diagonal in fixed-width lane groups. Three
// rolling diagonal buffers feed the fill; every diagonal is then copied to
// a compact arena of exactly n·m cells for traceback.
type SIMD struct{}

func (SIMD) Name() string { return "simd" }

func (SIMD) Align(query, target []byte, scores Scores) (Result, error) {
	return alignDiagonals(query, target, scores, lanes)
}

func alignDiagonals(query, target []byte, scores Scores, k laneKernel) (Result, error) {
	p, err := prepare(query, target, scores)
	if err != nil {
		return Result{}, err
	}
	n, m := len(query), len(target)
	if n == 0 || m == 0 {
		return Result{}, nil
	}

	arena, err := newDiagArena(n, m)
	if err != nil {
		return Result{}, allocError(err)
	}

	var (
		trev = bytealg.Reverse(nil, target)
		rows = make([]int32, 3*(n+1))
		mask = make([]int32, n)
		bufs = [3][]int32{rows[:n+1], rows[n+1 : 2*(n+1)], rows[2*(n+1):]}
		lp   = laneParams{gap: p.Gap, match: p.Match, penalty: -p.Miss}
		w    = k.width
		best dp.Best
	)
	// Buffers are indexed by row i. A cell (i, d) reads up = prev[i-1],
	// left = prev[i] and diag = prev2[i-1]; indices outside a diagonal's
	// row range are never written and stay at the zero border value.
	for d := 2; d <= n+m; d++ {
		cur, prev, prev2 := bufs[d%3], bufs[(d-1)%3], bufs[(d-2)%3]
		lo, hi := max(1, d-m), min(n, d-1)
		span := hi - lo + 1
		// target[d-i-1] == trev[m-d+i]
		bytealg.MatchMask(mask[:span], query[lo-1:hi], trev[m-d+lo:m-d+hi+1])

		i := lo
		for ; i+w-1 <= hi; i += w {
			top := k.fn(cur[i:i+w], prev[i-1:i-1+w], prev[i:i+w], prev2[i-1:i-1+w], mask[i-lo:i-lo+w], lp)
			if top > 0 && top >= best.H {
				for x := i; x < i+w; x++ {
					best.Offer(cur[x], x, d-x)
				}
			}
		}
		for ; i <= hi; i++ {
			h := dp.Score(prev2[i-1], prev[i-1], prev[i], mask[i-lo] != 0, p)
			cur[i] = h
			best.Offer(h, i, d-i)
		}
		copy(arena.diagonal(d), cur[lo:hi+1])
	}
	return traceResult(arena.source(query, target, p), query, target, best)
}

// diagArena stores the interior cells diagonal by diagonal. Diagonal d
// holds rows max(1, d-m)..min(n, d-1) starting at start[d].
type diagArena struct {
	m     int
	start []int
	cells []int32
}

func newDiagArena(n, m int) (*diagArena, error) {
	size, err := dp.Cells(n, m)
	if err != nil {
		return nil, err
	}
	start := make([]int, n+m+2)
	for d := 2; d <= n+m; d++ {
		start[d+1] = start[d] + min(n, d-1) - max(1, d-m) + 1
	}
	return &diagArena{m: m, start: start, cells: make([]int32, size)}, nil
}

func (a *diagArena) diagonal(d int) []int32 {
	return a.cells[a.start[d]:a.start[d+1]]
}

func (a *diagArena) at(i, j int) int32 {
	if i == 0 || j == 0 {
		return 0
	}
	d := i + j
	return a.cells[a.start[d]+i-max(1, d-a.m)]
}

func (a *diagArena) source(query, target []byte, p dp.Params) dp.Source {
	return dp.Recompute{H: a.at, Query: query, Target: target, Params: p}
}
