package main

import (
	"bytes"
	"context"
	"time"

	"github.com/mhr3/swalign/sw"
)

const (
	benchStart = 1 << 10
	// benchCells bounds the largest alignment a benchmark runs, keeping the
	// full-matrix engines within a few hundred MiB.
	benchCells = 1 << 26
)

// runOnce aligns two sequences that never match, so every cell costs the
// same, and returns the elapsed time and cell updates per second.
func runOnce(ctx context.Context, e sw.Engine, nQ, nT int) (time.Duration, float64, error) {
	query := bytes.Repeat([]byte("A"), nQ)
	target := bytes.Repeat([]byte("T"), nT)

	start := time.Now()
	if _, err := sw.Run(ctx, e, query, target, sw.Scores{Gap: 2, Match: 1, Miss: 1}); err != nil {
		return 0, 0, err
	}
	elapsed := time.Since(start)
	return elapsed, float64(nQ) * float64(nT) / elapsed.Seconds(), nil
}

// benchmark grows the target until one alignment takes longer than
// threshold, then averages CUPS over a qSteps×tSteps grid of sizes around
// that point. No alignment exceeds maxCells cells.
func benchmark(ctx context.Context, e sw.Engine, threshold time.Duration, qSteps, tSteps, maxCells int) (float64, error) {
	nQ, nT := benchStart, benchStart
	for {
		elapsed, _, err := runOnce(ctx, e, nQ, nT)
		if err != nil {
			return 0, err
		}
		if elapsed > threshold || nQ*nT*2 > maxCells {
			break
		}
		nT *= 2
	}

	// Shifts below are 0-based.
	nT = max(1, nT>>(qSteps+tSteps-2))
	for nT > 1 && (nQ<<(qSteps-1))*(nT<<(tSteps-1)) > maxCells {
		nT >>= 1
	}

	var sum float64
	for iT := 0; iT < tSteps; iT++ {
		for iQ := 0; iQ < qSteps; iQ++ {
			_, cups, err := runOnce(ctx, e, nQ<<iQ, nT<<iT)
			if err != nil {
				return 0, err
			}
			sum += cups
		}
	}
	return sum / float64(qSteps*tSteps), nil
}
