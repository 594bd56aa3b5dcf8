package sw

import (
	"fmt"

	"github.com/mhr3/swalign/internal/dp"
)

const defaultTile = 64

// Blocked stores the matrix as square tiles, each tile contiguous in
// memory, and fills it tile by tile. Results equal Scalar.
type Blocked struct {
	// Tile is the tile edge in cells. Zero means 64.
	Tile int
}

func (Blocked) Name() string { return "blocked" }

func (b Blocked) Align(query, target []byte, scores Scores) (Result, error) {
	size := b.Tile
	if size == 0 {
		size = defaultTile
	}
	if size < 0 {
		return Result{}, fmt.Errorf("%w: tile size %d", ErrInvalidConfig, size)
	}
	p, err := prepare(query, target, scores)
	if err != nil {
		return Result{}, err
	}
	n, m := len(query), len(target)
	if n == 0 || m == 0 {
		return Result{}, nil
	}

	tl, err := newTiles(n, m, size)
	if err != nil {
		return Result{}, allocError(err)
	}

	var best dp.Best
	for ty := 0; ty < tl.down; ty++ {
		rowLo, rowHi := max(1, ty*size), min(n, ty*size+size-1)
		for tx := 0; tx < tl.across; tx++ {
			colLo, colHi := max(1, tx*size), min(m, tx*size+size-1)
			for i := rowLo; i <= rowHi; i++ {
				qi := query[i-1]
				left := tl.at(i, colLo-1).H
				for j := colLo; j <= colHi; j++ {
					h, o := dp.Step(tl.at(i-1, j-1).H, tl.at(i-1, j).H, left, qi == target[j-1], p)
					tl.set(i, j, dp.Cell{H: h, From: o})
					best.Offer(h, i, j)
					left = h
				}
			}
		}
	}
	return traceResult(tl, query, target, best)
}

// tiles covers rows 0..n and columns 0..m with size×size tiles laid out
// tile-row-major; the zero border lives in the first tile row and column.
type tiles struct {
	size   int
	down   int
	across int
	cells  []dp.Cell
}

func newTiles(n, m, size int) (*tiles, error) {
	down := (n + size) / size
	across := (m + size) / size
	count, err := dp.Cells(down, across)
	if err != nil {
		return nil, err
	}
	total, err := dp.Cells(count, size*size)
	if err != nil {
		return nil, err
	}
	return &tiles{size: size, down: down, across: across, cells: make([]dp.Cell, total)}, nil
}

func (t *tiles) index(i, j int) int {
	ty, iy := i/t.size, i%t.size
	tx, jx := j/t.size, j%t.size
	return ((ty*t.across+tx)*t.size+iy)*t.size + jx
}

func (t *tiles) at(i, j int) dp.Cell { return t.cells[t.index(i, j)] }

func (t *tiles) set(i, j int, c dp.Cell) { t.cells[t.index(i, j)] = c }

func (t *tiles) Origin(i, j int) (dp.Origin, error) {
	return t.at(i, j).From, nil
}
