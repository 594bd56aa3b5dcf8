package sw

// laneParams holds the scoring constants broadcast across a lane group.
type laneParams struct {
	gap     int32
	match   int32
	penalty int32 // -miss
}

// laneFunc evaluates len(cur) consecutive cells of one anti-diagonal and
// returns their maximum. up, left, diag and mask are aligned with cur;
// mask is -1 where the symbols match and 0 where they differ. len(cur) is
// always the kernel's width.
type laneFunc func(cur, up, left, diag, mask []int32, p laneParams) int32

// laneKernel is one fixed-width lane group implementation.
type laneKernel struct {
	name  string
	width int
	fn    laneFunc
}

// kernel8 is the portable reference every vector kernel must agree with.
var kernel8 = laneKernel{name: "generic", width: 8, fn: lanes8}

func lanes8(cur, up, left, diag, mask []int32, p laneParams) int32 {
	c := (*[8]int32)(cur)
	u := (*[8]int32)(up)
	l := (*[8]int32)(left)
	d := (*[8]int32)(diag)
	k := (*[8]int32)(mask)
	var top int32
	for x := 0; x < 8; x++ {
		s := d[x] + (p.match&k[x] | p.penalty&^k[x])
		h := max(s, u[x]-p.gap, l[x]-p.gap, 0)
		c[x] = h
		top = max(top, h)
	}
	return top
}
