package sw

import "github.com/mhr3/swalign/internal/dp"

// Scalar fills the whole matrix row by row and follows stored origins
// back from the best cell. It is the reference every other engine matches.
type Scalar struct{}

func (Scalar) Name() string { return "scalar" }

func (Scalar) Align(query, target []byte, scores Scores) (Result, error) {
	p, err := prepare(query, target, scores)
	if err != nil {
		return Result{}, err
	}
	n, m := len(query), len(target)
	if n == 0 || m == 0 {
		return Result{}, nil
	}

	mx, err := dp.NewMatrix(n, m)
	if err != nil {
		return Result{}, allocError(err)
	}

	var best dp.Best
	for i := 1; i <= n; i++ {
		up, row := mx.Row(i-1), mx.Row(i)
		qi := query[i-1]
		for j := 1; j <= m; j++ {
			h, o := dp.Step(up[j-1].H, up[j].H, row[j-1].H, qi == target[j-1], p)
			row[j] = dp.Cell{H: h, From: o}
			best.Offer(h, i, j)
		}
	}
	return traceResult(mx, query, target, best)
}
