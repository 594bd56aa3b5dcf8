package dp

import (
	"errors"
	"fmt"
	"math"
)

// ErrTooLarge is returned when a matrix would not fit in addressable memory.
var ErrTooLarge = errors.New("dp: matrix too large")

// Cell is one fixed-size arena slot: the score and the move that produced it.
type Cell struct {
	H    int32
	From Origin
}

// Matrix is a row-major arena of (n+1)·(m+1) cells including the zero
// border. Cells are addressed by index, never by reference.
type Matrix struct {
	cols  int
	cells []Cell
}

// Cells returns rows·cols, or ErrTooLarge if the product overflows.
func Cells(rows, cols int) (int, error) {
	if rows < 0 || cols < 0 || (cols > 0 && rows > math.MaxInt/cols) {
		return 0, fmt.Errorf("%w: %d x %d cells", ErrTooLarge, rows, cols)
	}
	return rows * cols, nil
}

// NewMatrix allocates the arena for a query of n and a target of m symbols.
func NewMatrix(n, m int) (*Matrix, error) {
	size, err := Cells(n+1, m+1)
	if err != nil {
		return nil, err
	}
	return &Matrix{cols: m + 1, cells: make([]Cell, size)}, nil
}

// Row returns the m+1 cells of row i.
func (mx *Matrix) Row(i int) []Cell {
	return mx.cells[i*mx.cols : (i+1)*mx.cols]
}

// At returns cell (i, j).
func (mx *Matrix) At(i, j int) Cell {
	return mx.cells[i*mx.cols+j]
}

// Origin implements Source.
func (mx *Matrix) Origin(i, j int) (Origin, error) {
	return mx.At(i, j).From, nil
}
