//go:build cgo

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhr3/swalign/sw"
)

func TestFindAlignmentAllVariants(t *testing.T) {
	q, tg := newCString("TGTTACGG"), newCString("GGTTGACTA")
	defer freeCString(q)
	defer freeCString(tg)
	scores := cScores(2, 3, 3)
	want := sw.Result{Query: "GTT-AC", Target: "GTTGAC", Score: 13, MaxX: 7, MaxY: 6}

	variants := map[string]func() sw.Result{
		"sequential": func() sw.Result {
			r := find_alignment_sequential(q, tg, scores)
			require.NotNil(t, r)
			defer free_alignment_result(r)
			return goResult(r)
		},
		"sequential_straight": func() sw.Result {
			r := find_alignment_sequential_straight(q, tg, scores)
			require.NotNil(t, r)
			defer free_alignment_result(r)
			return goResult(r)
		},
		"parallel": func() sw.Result {
			r := find_alignment_parallel(q, tg, 3, scores)
			require.NotNil(t, r)
			defer free_alignment_result(r)
			return goResult(r)
		},
		"simd": func() sw.Result {
			r := find_alignment_simd(q, tg, scores)
			require.NotNil(t, r)
			defer free_alignment_result(r)
			return goResult(r)
		},
		"low_memory": func() sw.Result {
			r := find_alignment_low_memory(q, tg, scores)
			require.NotNil(t, r)
			defer free_alignment_result(r)
			return goResult(r)
		},
		"auto": func() sw.Result {
			r := find_alignment_auto(q, tg, scores)
			require.NotNil(t, r)
			defer free_alignment_result(r)
			return goResult(r)
		},
	}

	before := live.Load()
	for name, run := range variants {
		assert.Equal(t, want, run(), name)
		assert.Equal(t, int32(sw.KindNone), int32(alignment_last_error()), name)
	}
	assert.Equal(t, before, live.Load(), "every result released")
}

func TestFindAlignmentEmptyInput(t *testing.T) {
	q, tg := newCString(""), newCString("AGCT")
	defer freeCString(q)
	defer freeCString(tg)

	r := find_alignment_simd(q, tg, cScores(1, 2, 1))
	require.NotNil(t, r)
	assert.Equal(t, sw.Result{}, goResult(r))
	free_alignment_result(r)
}

func TestFindAlignmentNullInput(t *testing.T) {
	tg := newCString("AGCT")
	defer freeCString(tg)

	before := live.Load()
	assert.Nil(t, find_alignment_simd(nil, tg, cScores(1, 2, 1)))
	assert.Equal(t, int32(sw.KindInvalidInput), int32(alignment_last_error()))
	assert.Nil(t, find_alignment_low_memory(tg, nil, cScores(1, 2, 1)))
	assert.Equal(t, int32(sw.KindInvalidInput), int32(alignment_last_error()))
	assert.Equal(t, before, live.Load())
}

func TestFindAlignmentZeroThreads(t *testing.T) {
	q := newCString("AGCT")
	defer freeCString(q)

	assert.Nil(t, find_alignment_parallel(q, q, 0, cScores(1, 2, 1)))
	assert.Equal(t, int32(sw.KindInvalidConfig), int32(alignment_last_error()))
}

func TestFindAlignmentScoreOverflow(t *testing.T) {
	// 3 · 30000 does not fit the 16-bit score field.
	q := newCString("AAA")
	defer freeCString(q)

	before := live.Load()
	assert.Nil(t, find_alignment_sequential_straight(q, q, cScores(1, 30000, 1)))
	assert.Equal(t, int32(sw.KindInvalidConfig), int32(alignment_last_error()))
	assert.Equal(t, before, live.Load())
}

func TestFreeNullIsNoop(t *testing.T) {
	before := live.Load()
	free_alignment_result(nil)
	free_c_string(nil)
	assert.Equal(t, before, live.Load())
}

func TestFreeCString(t *testing.T) {
	q, tg := newCString("AGCT"), newCString("AGCT")
	defer freeCString(q)
	defer freeCString(tg)

	r := find_alignment_simd(q, tg, cScores(1, 2, 1))
	require.NotNil(t, r)
	got := goResult(r)
	assert.Equal(t, sw.Result{Query: "AGCT", Target: "AGCT", Score: 8, MaxX: 4, MaxY: 4}, got)
	free_alignment_result(r)

	s := cString("ACGT")
	require.NotNil(t, s)
	free_c_string(s)
}

func TestFindAlignmentAllocationFailure(t *testing.T) {
	q, tg := newCString("TGTTACGG"), newCString("GGTTGACTA")
	defer freeCString(q)
	defer freeCString(tg)
	defer failAllocAfter(-1)

	// Allocations in order: query string, target string, result struct.
	for _, n := range []int{0, 1, 2} {
		liveBefore, heapBefore := live.Load(), allocOutstanding()
		failAllocAfter(n)
		r := find_alignment_sequential_straight(q, tg, cScores(2, 3, 3))
		failAllocAfter(-1)

		assert.Nil(t, r, "fail after %d", n)
		assert.Equal(t, int32(sw.KindAllocation), int32(alignment_last_error()), "fail after %d", n)
		assert.Equal(t, liveBefore, live.Load(), "fail after %d", n)
		assert.Equal(t, heapBefore, allocOutstanding(), "fail after %d: partial result freed", n)
	}

	heapBefore := allocOutstanding()
	failAllocAfter(3)
	r := find_alignment_sequential_straight(q, tg, cScores(2, 3, 3))
	failAllocAfter(-1)
	require.NotNil(t, r)
	assert.Equal(t, int32(sw.KindNone), int32(alignment_last_error()))
	assert.Equal(t, heapBefore+3, allocOutstanding())
	free_alignment_result(r)
	assert.Equal(t, heapBefore, allocOutstanding())
}
