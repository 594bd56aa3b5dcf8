package sw

import (
	"fmt"

	"github.com/mhr3/swalign/internal/dp"
)

const defaultBandCells = 1 << 20

// LowMemory never materializes the full matrix. A forward pass keeps one
// vector along the shorter sequence to locate the best cell; the path is
// then rebuilt by recursively splitting the rows above the best cell into
// bands, recomputing each band from its known top row.
//
// Peak memory is O(min(n, m)) for the scan and O(MaxX·log(MaxY) + BandCells)
// for the reconstruction. Results equal Scalar.
type LowMemory struct {
	// BandCells is the largest band, in cells, that is materialized and
	// walked directly. Zero means 1<<20.
	BandCells int
}

func (LowMemory) Name() string { return "lowmem" }

func (e LowMemory) Align(query, target []byte, scores Scores) (Result, error) {
	budget := e.BandCells
	if budget == 0 {
		budget = defaultBandCells
	}
	if budget < 0 {
		return Result{}, fmt.Errorf("%w: band budget %d", ErrInvalidConfig, budget)
	}
	p, err := prepare(query, target, scores)
	if err != nil {
		return Result{}, err
	}
	if len(query) == 0 || len(target) == 0 {
		return Result{}, nil
	}

	best := scanBest(query, target, p)
	if best.H == 0 {
		return Result{}, nil
	}

	r := rebuild{query: query, target: target, p: p, budget: budget}
	if _, _, err := r.band(0, make([]int32, best.J+1), best.I, best.J); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	q, t := r.walk.Finish()
	return newResult(q, t, best), nil
}

// scanBest finds the best cell keeping a single vector along the shorter
// sequence.
func scanBest(query, target []byte, p dp.Params) dp.Best {
	n, m := len(query), len(target)
	var best dp.Best
	if n <= m {
		prev, cur := make([]int32, n+1), make([]int32, n+1)
		for j := 1; j <= m; j++ {
			dp.FillColumn(prev, cur, target[j-1], query, p)
			for i := 1; i <= n; i++ {
				best.Offer(cur[i], i, j)
			}
			prev, cur = cur, prev
		}
		return best
	}
	prev, cur := make([]int32, m+1), make([]int32, m+1)
	for i := 1; i <= n; i++ {
		dp.FillRow(prev, cur, query[i-1], target, p)
		for j := 1; j <= m; j++ {
			best.Offer(cur[j], i, j)
		}
		prev, cur = cur, prev
	}
	return best
}

type rebuild struct {
	query  []byte
	target []byte
	p      dp.Params
	budget int
	walk   dp.Walk
}

// band continues the path from cell (bottom, j) up to row top, given the
// scores of row top over columns 0..j. It returns the column where the path
// reaches row top, or done once the path has ended.
func (r *rebuild) band(top int, topRow []int32, bottom, j int) (int, bool, error) {
	width := j + 1
	if bottom-top <= 1 || (bottom-top+1) <= r.budget/width {
		return r.walkBand(top, topRow[:width], bottom, j)
	}
	mid := top + (bottom-top)/2
	midRow := r.advance(topRow[:width], top, mid)
	jm, done, err := r.band(mid, midRow, bottom, j)
	if err != nil || done {
		return jm, done, err
	}
	return r.band(top, topRow, mid, jm)
}

// advance recomputes row to from row from over the same columns.
func (r *rebuild) advance(row []int32, from, to int) []int32 {
	prev := append([]int32(nil), row...)
	cur := make([]int32, len(row))
	target := r.target[:len(row)-1]
	for i := from + 1; i <= to; i++ {
		dp.FillRow(prev, cur, r.query[i-1], target, r.p)
		prev, cur = cur, prev
	}
	return prev
}

// walkBand materializes rows top..bottom over columns 0..j and follows the
// path until it leaves the band or ends.
func (r *rebuild) walkBand(top int, topRow []int32, bottom, j int) (int, bool, error) {
	width := len(topRow)
	h := make([]int32, (bottom-top+1)*width)
	copy(h, topRow)
	target := r.target[:j]
	for k := 1; k <= bottom-top; k++ {
		dp.FillRow(h[(k-1)*width:k*width], h[k*width:(k+1)*width], r.query[top+k-1], target, r.p)
	}

	src := dp.Recompute{
		H:      func(i, jj int) int32 { return h[(i-top)*width+jj] },
		Query:  r.query,
		Target: r.target,
		Params: r.p,
	}
	i := bottom
	for i > top {
		if j == 0 {
			return 0, true, nil
		}
		o, err := src.Origin(i, j)
		if err != nil {
			return 0, false, err
		}
		if o == dp.None {
			return j, true, nil
		}
		i, j = r.walk.Move(o, r.query, r.target, i, j)
	}
	return j, top == 0, nil
}
