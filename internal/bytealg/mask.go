// Package bytealg holds the byte-level helpers behind the diagonal kernels.
package bytealg

import "encoding/binary"

const (
	lo7 = 0x7F7F7F7F7F7F7F7F
	hi1 = 0x8080808080808080
)

// MatchMask sets dst[k] to -1 where a[k] == b[k] and to 0 elsewhere. The
// all-ones form lets callers select between two values with and/andnot the
// way vector compare results are used. dst, a and b must have equal length.
func MatchMask(dst []int32, a, b []byte) {
	n := len(dst)
	_ = a[:n]
	_ = b[:n]
	k := 0
	for ; k+8 <= n; k += 8 {
		x := binary.LittleEndian.Uint64(a[k:]) ^ binary.LittleEndian.Uint64(b[k:])
		// High bit of each byte is set where the bytes differ.
		diff := (((x & lo7) + lo7) | x) & hi1
		out := dst[k : k+8 : k+8]
		for l := range out {
			out[l] = int32((diff>>(8*l+7))&1) - 1
		}
	}
	for ; k < n; k++ {
		if a[k] == b[k] {
			dst[k] = -1
		} else {
			dst[k] = 0
		}
	}
}

// Reverse writes s back to front into dst, growing it as needed, and
// returns the result.
func Reverse(dst, s []byte) []byte {
	if cap(dst) < len(s) {
		dst = make([]byte, len(s))
	}
	dst = dst[:len(s)]
	last := len(s) - 1
	for k, c := range s {
		dst[last-k] = c
	}
	return dst
}

// ReverseInPlace reverses b.
func ReverseInPlace(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}
