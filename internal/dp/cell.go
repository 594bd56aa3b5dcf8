// Package dp holds the Smith–Waterman recurrence shared by every engine:
// single-cell evaluation, best-cell bookkeeping, the cell arena and the
// traceback walk.
//
// Matrix coordinates are (i, j) with i indexing the query (rows) and j the
// target (columns). Row 0 and column 0 form the zero border, so the cell
// (i, j) scores an alignment ending at query[i-1] and target[j-1].
package dp

// Origin records which neighbour produced a cell's score.
type Origin uint8

const (
	// None marks a cell that restarted at zero. Traceback stops here.
	None Origin = iota
	// Diag consumes one symbol of each sequence (match or mismatch).
	Diag
	// Up consumes a query symbol against a gap in the target.
	Up
	// Left consumes a target symbol against a gap in the query.
	Left
)

// GapSymbol is written opposite a symbol that has no partner.
const GapSymbol = '-'

// Params is the scoring triple in cell arithmetic. Penalties are positive
// and get subtracted.
type Params struct {
	Gap   int32
	Match int32
	Miss  int32
}

// Step evaluates one cell from its diagonal, upper and left neighbours.
// Ties prefer Diag, then Up, then Left. A cell whose candidates cannot beat
// zero scores zero with origin None.
func Step(diag, up, left int32, same bool, p Params) (int32, Origin) {
	if same {
		diag += p.Match
	} else {
		diag -= p.Miss
	}
	h, o := int32(0), None
	if diag > h {
		h, o = diag, Diag
	}
	if v := up - p.Gap; v > h {
		h, o = v, Up
	}
	if v := left - p.Gap; v > h {
		h, o = v, Left
	}
	return h, o
}

// Score is Step without the origin, for fills that only keep scores.
func Score(diag, up, left int32, same bool, p Params) int32 {
	if same {
		diag += p.Match
	} else {
		diag -= p.Miss
	}
	return max(diag, up-p.Gap, left-p.Gap, 0)
}

// FillRow computes row i of the matrix from row i-1. qi is query[i-1] and
// target must hold len(cur)-1 symbols. cur[0] is the zero border.
func FillRow(prev, cur []int32, qi byte, target []byte, p Params) {
	cur[0] = 0
	left := int32(0)
	for j := 1; j < len(cur); j++ {
		left = Score(prev[j-1], prev[j], left, qi == target[j-1], p)
		cur[j] = left
	}
}

// FillColumn is FillRow transposed: it computes column j from column j-1,
// with tj = target[j-1] and query holding len(cur)-1 symbols.
func FillColumn(prev, cur []int32, tj byte, query []byte, p Params) {
	cur[0] = 0
	up := int32(0)
	for i := 1; i < len(cur); i++ {
		up = Score(prev[i-1], up, prev[i], query[i-1] == tj, p)
		cur[i] = up
	}
}
