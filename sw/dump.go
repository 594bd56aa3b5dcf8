package sw

import (
	"fmt"
	"io"
	"strings"

	"github.com/mhr3/swalign/internal/dp"
)

// Dump writes the score matrix with the target across the top and the
// query down the side. It holds one row at a time, but the output grows
// with n·m, so it is meant for small inputs.
func Dump(w io.Writer, query, target []byte, scores Scores) error {
	p, err := prepare(query, target, scores)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("      ")
	for _, c := range target {
		fmt.Fprintf(&b, "%5c", c)
	}
	b.WriteByte('\n')

	prev := make([]int32, len(target)+1)
	cur := make([]int32, len(target)+1)
	writeRow(&b, ' ', prev)
	for _, c := range query {
		dp.FillRow(prev, cur, c, target, p)
		writeRow(&b, c, cur)
		prev, cur = cur, prev
	}

	_, err = io.WriteString(w, b.String())
	return err
}

func writeRow(b *strings.Builder, label byte, row []int32) {
	fmt.Fprintf(b, "%c", label)
	for _, h := range row {
		fmt.Fprintf(b, "%5d", h)
	}
	b.WriteByte('\n')
}
