//go:build !noasm && goexperiment.simd

package sw

import (
	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

var (
	hasAVX2    = cpu.X86.HasAVX2
	hasAVX512F = cpu.X86.HasAVX512F
)

// archKernels lists the kernels this CPU can run, preferred first.
func archKernels() []laneKernel {
	var ks []laneKernel
	if hasAVX512F {
		ks = append(ks, laneKernel{name: "avx512", width: 16, fn: lanesAVX512})
	}
	if hasAVX2 {
		ks = append(ks, laneKernel{name: "avx2", width: 8, fn: lanesAVX2})
	}
	return append(ks, newHwyKernel())
}

// The match/mismatch select is penalty + (mask & (match-penalty)), since
// mask lanes are all ones or all zeros.

func lanesAVX2(cur, up, left, diag, mask []int32, p laneParams) int32 {
	var (
		zero    = archsimd.BroadcastInt32x8(0)
		gap     = archsimd.BroadcastInt32x8(p.gap)
		penalty = archsimd.BroadcastInt32x8(p.penalty)
		delta   = archsimd.BroadcastInt32x8(p.match - p.penalty)
	)
	k := archsimd.LoadInt32x8Slice(mask)
	s := archsimd.LoadInt32x8Slice(diag).Add(penalty).Add(k.And(delta))
	u := archsimd.LoadInt32x8Slice(up).Sub(gap)
	l := archsimd.LoadInt32x8Slice(left).Sub(gap)
	h := s.Max(zero).Max(u.Max(l))
	h.StoreSlice(cur)
	return reduceMax4(h.GetLo().Max(h.GetHi()))
}

func lanesAVX512(cur, up, left, diag, mask []int32, p laneParams) int32 {
	var (
		zero    = archsimd.BroadcastInt32x16(0)
		gap     = archsimd.BroadcastInt32x16(p.gap)
		penalty = archsimd.BroadcastInt32x16(p.penalty)
		delta   = archsimd.BroadcastInt32x16(p.match - p.penalty)
	)
	k := archsimd.LoadInt32x16Slice(mask)
	s := archsimd.LoadInt32x16Slice(diag).Add(penalty).Add(k.And(delta))
	u := archsimd.LoadInt32x16Slice(up).Sub(gap)
	l := archsimd.LoadInt32x16Slice(left).Sub(gap)
	h := s.Max(zero).Max(u.Max(l))
	h.StoreSlice(cur)
	h8 := h.GetLo().Max(h.GetHi())
	return reduceMax4(h8.GetLo().Max(h8.GetHi()))
}

func reduceMax4(v archsimd.Int32x4) int32 {
	return max(v.GetElem(0), v.GetElem(1), v.GetElem(2), v.GetElem(3))
}
