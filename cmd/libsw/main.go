// Command libsw exposes the alignment engines through a C ABI. Build it with
//
//	go build -buildmode=c-shared -o libsw.so ./cmd/libsw
//
// and include sw.h (with sw_types.h) from C. Results are allocated with the
// C allocator and must be released with free_alignment_result.
package main

/*
#include <string.h>
#include "alloc.h"
*/
import "C"

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"unsafe"

	"github.com/mhr3/swalign/sw"
)

var (
	// live counts Results handed out and not yet released.
	live      atomic.Int64
	lastError atomic.Int32
)

func main() {}

//export find_alignment_sequential
func find_alignment_sequential(query, target *C.char, scores C.struct_AlignmentScores) *C.struct_Result {
	return align(sw.Blocked{}, query, target, scores)
}

//export find_alignment_sequential_straight
func find_alignment_sequential_straight(query, target *C.char, scores C.struct_AlignmentScores) *C.struct_Result {
	return align(sw.Scalar{}, query, target, scores)
}

//export find_alignment_parallel
func find_alignment_parallel(query, target *C.char, threads C.size_t, scores C.struct_AlignmentScores) *C.struct_Result {
	if threads == 0 || uint64(threads) > sw.MaxThreads {
		fail(fmt.Errorf("%w: threads %d outside [1, %d]", sw.ErrInvalidConfig, uint64(threads), sw.MaxThreads))
		return nil
	}
	return align(sw.Wavefront{Threads: int(threads)}, query, target, scores)
}

//export find_alignment_simd
func find_alignment_simd(query, target *C.char, scores C.struct_AlignmentScores) *C.struct_Result {
	return align(sw.SIMD{}, query, target, scores)
}

//export find_alignment_low_memory
func find_alignment_low_memory(query, target *C.char, scores C.struct_AlignmentScores) *C.struct_Result {
	return align(sw.LowMemory{}, query, target, scores)
}

//export find_alignment_auto
func find_alignment_auto(query, target *C.char, scores C.struct_AlignmentScores) *C.struct_Result {
	return align(sw.Auto{}, query, target, scores)
}

//export free_alignment_result
func free_alignment_result(r *C.struct_Result) {
	if r == nil {
		return
	}
	C.sw_free(unsafe.Pointer(r.query_ptr))
	C.sw_free(unsafe.Pointer(r.target_ptr))
	C.sw_free(unsafe.Pointer(r))
	live.Add(-1)
}

//export free_c_string
func free_c_string(s *C.char) {
	if s == nil {
		return
	}
	C.sw_free(unsafe.Pointer(s))
}

//export alignment_last_error
func alignment_last_error() C.int {
	return C.int(lastError.Load())
}

func fail(err error) {
	lastError.Store(int32(sw.Kind(err)))
}

// align runs e over the borrowed C strings and marshals the Result. No
// panic crosses the boundary.
func align(e sw.Engine, query, target *C.char, scores C.struct_AlignmentScores) (out *C.struct_Result) {
	defer func() {
		if r := recover(); r != nil {
			fail(fmt.Errorf("%w: %v", sw.ErrInternal, r))
			out = nil
		}
	}()
	if query == nil || target == nil {
		fail(fmt.Errorf("%w: NULL sequence", sw.ErrInvalidInput))
		return nil
	}

	res, err := sw.Run(context.Background(), e, borrow(query), borrow(target), goScores(scores))
	if err != nil {
		fail(err)
		return nil
	}
	if res.Score > math.MaxUint16 {
		fail(fmt.Errorf("%w: score %d does not fit the 16-bit result field", sw.ErrInvalidConfig, res.Score))
		return nil
	}
	out, err = marshal(res)
	if err != nil {
		fail(err)
		return nil
	}
	lastError.Store(sw.KindNone)
	return out
}

// borrow views a NUL-terminated C string as a byte slice without copying.
func borrow(s *C.char) []byte {
	n := int(C.strlen(s))
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(s)), n)
}

func goScores(s C.struct_AlignmentScores) sw.Scores {
	return sw.Scores{Gap: int(s.gap), Match: int(s.match), Miss: int(s.miss)}
}

// marshal copies res into C memory. On failure everything allocated so far
// is released.
func marshal(res sw.Result) (*C.struct_Result, error) {
	q := cString(res.Query)
	if q == nil {
		return nil, fmt.Errorf("%w: query string", sw.ErrAllocation)
	}
	t := cString(res.Target)
	if t == nil {
		C.sw_free(unsafe.Pointer(q))
		return nil, fmt.Errorf("%w: target string", sw.ErrAllocation)
	}
	r := C.sw_result_new()
	if r == nil {
		C.sw_free(unsafe.Pointer(q))
		C.sw_free(unsafe.Pointer(t))
		return nil, fmt.Errorf("%w: result struct", sw.ErrAllocation)
	}
	r.query_ptr = q
	r.target_ptr = t
	r.score = C.uint16_t(res.Score)
	r.max_x = C.uint64_t(res.MaxX)
	r.max_y = C.uint64_t(res.MaxY)
	live.Add(1)
	return r, nil
}

// cString is C.CString that reports allocation failure as nil instead of
// aborting the process.
func cString(s string) *C.char {
	return C.sw_strndup((*C.char)(unsafe.Pointer(unsafe.StringData(s))), C.size_t(len(s)))
}
