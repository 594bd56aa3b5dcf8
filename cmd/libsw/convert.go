package main

// Conversions for the tests, which cannot use cgo directly.

/*
#include <stdlib.h>
#include "alloc.h"
*/
import "C"

import (
	"unsafe"

	"github.com/mhr3/swalign/sw"
)

// goResult copies a C result into Go memory. It does not take ownership.
func goResult(r *C.struct_Result) sw.Result {
	return sw.Result{
		Query:  C.GoString(r.query_ptr),
		Target: C.GoString(r.target_ptr),
		Score:  int(r.score),
		MaxX:   int(r.max_x),
		MaxY:   int(r.max_y),
	}
}

func newCString(s string) *C.char { return C.CString(s) }

func freeCString(s *C.char) { C.free(unsafe.Pointer(s)) }

// failAllocAfter lets the next n C allocations succeed and fails the rest.
// A negative n restores normal allocation.
func failAllocAfter(n int) { C.sw_alloc_fail_after = C.int(n) }

func allocOutstanding() int { return int(C.sw_alloc_outstanding()) }

func cScores(gap, match, miss uint16) C.struct_AlignmentScores {
	return C.struct_AlignmentScores{gap: C.uint16_t(gap), match: C.uint16_t(match), miss: C.uint16_t(miss)}
}
