package dp

import (
	"errors"
	"fmt"

	"github.com/mhr3/swalign/internal/bytealg"
)

// ErrInconsistent means a stored score disagrees with the recurrence. It is
// only reachable through a bug in a fill.
var ErrInconsistent = errors.New("dp: stored score disagrees with the recurrence")

// Source yields the origin of cell (i, j) for i, j ≥ 1.
type Source interface {
	Origin(i, j int) (Origin, error)
}

// Recompute derives origins from stored scores alone, for fills that do not
// keep an origin per cell. H must return 0 on the border.
type Recompute struct {
	H      func(i, j int) int32
	Query  []byte
	Target []byte
	Params Params
}

// Origin implements Source by re-evaluating the cell with Step.
func (r Recompute) Origin(i, j int) (Origin, error) {
	h, o := Step(r.H(i-1, j-1), r.H(i-1, j), r.H(i, j-1), r.Query[i-1] == r.Target[j-1], r.Params)
	if stored := r.H(i, j); h != stored {
		return None, fmt.Errorf("%w: cell (%d,%d) holds %d, recurrence gives %d", ErrInconsistent, i, j, stored, h)
	}
	return o, nil
}

// Walk collects alignment columns from the end of the alignment backwards.
type Walk struct {
	query  []byte
	target []byte
}

// Move applies the traceback move o at (i, j) and returns the predecessor
// cell. None leaves the position unchanged.
func (w *Walk) Move(o Origin, query, target []byte, i, j int) (int, int) {
	switch o {
	case Diag:
		w.query = append(w.query, query[i-1])
		w.target = append(w.target, target[j-1])
		return i - 1, j - 1
	case Up:
		w.query = append(w.query, query[i-1])
		w.target = append(w.target, GapSymbol)
		return i - 1, j
	case Left:
		w.query = append(w.query, GapSymbol)
		w.target = append(w.target, target[j-1])
		return i, j - 1
	}
	return i, j
}

// Finish returns the collected columns in alignment order.
func (w *Walk) Finish() (query, target []byte) {
	bytealg.ReverseInPlace(w.query)
	bytealg.ReverseInPlace(w.target)
	return w.query, w.target
}

// Trace walks from best back to the cell where the local alignment starts
// and returns the two aligned strings.
func Trace(src Source, query, target []byte, best Best) ([]byte, []byte, error) {
	if best.H == 0 {
		return nil, nil, nil
	}
	var w Walk
	i, j := best.I, best.J
	for i > 0 && j > 0 {
		o, err := src.Origin(i, j)
		if err != nil {
			return nil, nil, err
		}
		if o == None {
			break
		}
		i, j = w.Move(o, query, target, i, j)
	}
	q, t := w.Finish()
	return q, t, nil
}
