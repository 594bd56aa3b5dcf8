package dp

// Best is the running maximum of a matrix fill.
//
// Cells are ranked by score, then by row-major position: for equal scores
// the smaller i wins, then the smaller j. The ranking is a total order, so
// the winner does not depend on the order in which cells are offered. The
// zero value means "nothing positive seen" and reports the cell (0, 0).
type Best struct {
	H int32
	I int
	J int
}

// Offer records cell (i, j) with score h if it outranks the current best.
func (b *Best) Offer(h int32, i, j int) {
	if h > b.H || (h == b.H && h > 0 && (i < b.I || (i == b.I && j < b.J))) {
		b.H, b.I, b.J = h, i, j
	}
}

// Merge folds another partial maximum into b.
func (b *Best) Merge(o Best) {
	b.Offer(o.H, o.I, o.J)
}
