// Package sw computes optimal local alignments of two byte sequences with
// the Smith–Waterman recurrence (linear gap penalty).
//
// Several engines share one contract and return identical results:
//
//	Scalar      row-major fill, the reference
//	Blocked     tiled arena for cache locality
//	Wavefront   anti-diagonal fill across worker goroutines
//	SIMD        anti-diagonal fill in fixed-width lane groups
//	LowMemory   linear-space scan plus banded reconstruction
//	Auto        SIMD, or LowMemory for very large inputs
//
// Rows of the DP matrix follow the query and columns the target. A Result
// reports the best cell as MaxX (target position) and MaxY (query position).
package sw

import (
	"fmt"
	"math"

	"github.com/mhr3/swalign/internal/dp"
)

// Engine computes the best local alignment of query against target. The
// buffers are only read, and only for the duration of the call.
type Engine interface {
	Name() string
	Align(query, target []byte, scores Scores) (Result, error)
}

// prepare checks everything that must hold before an engine allocates.
func prepare(query, target []byte, s Scores) (dp.Params, error) {
	if err := s.Validate(); err != nil {
		return dp.Params{}, err
	}
	// The best possible score is match·min(n, m); cells are int32.
	if short := min(len(query), len(target)); int64(s.Match)*int64(short) > math.MaxInt32 {
		return dp.Params{}, fmt.Errorf("%w: match reward %d over %d symbols overflows cell scores",
			ErrInvalidConfig, s.Match, short)
	}
	return s.params(), nil
}

func traceResult(src dp.Source, query, target []byte, best dp.Best) (Result, error) {
	q, t, err := dp.Trace(src, query, target, best)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return newResult(q, t, best), nil
}

func allocError(err error) error {
	return fmt.Errorf("%w: %w", ErrAllocation, err)
}
