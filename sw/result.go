package sw

import (
	"strconv"
	"strings"

	"github.com/mhr3/swalign/internal/dp"
)

// Result is one optimal local alignment.
//
// Query and Target have equal length and use '-' for a gap; a column never
// holds a gap on both sides. MaxX and MaxY are the 1-based target and query
// positions of the last aligned symbols. An alignment with Score 0 is empty
// and reports MaxX = MaxY = 0.
type Result struct {
	Query  string `json:"query"`
	Target string `json:"target"`
	Score  int    `json:"score"`
	MaxX   int    `json:"max_x"`
	MaxY   int    `json:"max_y"`
}

func newResult(query, target []byte, best dp.Best) Result {
	return Result{
		Query:  string(query),
		Target: string(target),
		Score:  int(best.H),
		MaxX:   best.J,
		MaxY:   best.I,
	}
}

// String renders the alignment over three lines with a marker row between
// the sequences: '|' for a match, '.' for a mismatch, ' ' for a gap.
func (r Result) String() string {
	var b strings.Builder
	b.WriteString("score=")
	b.WriteString(strconv.Itoa(r.Score))
	b.WriteString(" x=")
	b.WriteString(strconv.Itoa(r.MaxX))
	b.WriteString(" y=")
	b.WriteString(strconv.Itoa(r.MaxY))
	b.WriteByte('\n')
	b.WriteString(r.Query)
	b.WriteByte('\n')
	for k := 0; k < len(r.Query) && k < len(r.Target); k++ {
		switch q, t := r.Query[k], r.Target[k]; {
		case q == dp.GapSymbol || t == dp.GapSymbol:
			b.WriteByte(' ')
		case q == t:
			b.WriteByte('|')
		default:
			b.WriteByte('.')
		}
	}
	b.WriteByte('\n')
	b.WriteString(r.Target)
	b.WriteByte('\n')
	return b.String()
}
