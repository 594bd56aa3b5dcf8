//go:build !noasm

package sw

import "github.com/ajroetker/go-highway/hwy"

// newHwyKernel evaluates lane groups through highway's portable vectors.
// The group spans at least 8 cells so short native vectors still amortize
// the per-group best-cell check.
func newHwyKernel() laneKernel {
	return laneKernel{
		name:  "hwy-" + hwy.CurrentName(),
		width: max(8, hwy.MaxLanes[int32]()),
		fn:    hwyLanes,
	}
}

func hwyLanes(cur, up, left, diag, mask []int32, p laneParams) int32 {
	var (
		n       = hwy.MaxLanes[int32]()
		zero    = hwy.Zero[int32]()
		gap     = hwy.Set(p.gap)
		match   = hwy.Set(p.match)
		penalty = hwy.Set(p.penalty)
		top     = zero
	)
	for x := 0; x < len(cur); x += n {
		miss := hwy.Equal(hwy.Load(mask[x:]), zero)
		s := hwy.Add(hwy.Load(diag[x:]), hwy.IfThenElse(miss, penalty, match))
		u := hwy.Sub(hwy.Load(up[x:]), gap)
		l := hwy.Sub(hwy.Load(left[x:]), gap)
		h := hwy.Max(hwy.Max(s, zero), hwy.Max(u, l))
		hwy.Store(h, cur[x:])
		top = hwy.Max(top, h)
	}

	var buf [64]int32
	hwy.Store(top, buf[:])
	best := buf[0]
	for _, v := range buf[1:n] {
		best = max(best, v)
	}
	return best
}
