package sw

import (
	"fmt"
	"math"

	"github.com/mhr3/swalign/internal/dp"
)

// Scores is the linear scoring scheme. Gap and Miss are penalties and are
// subtracted; Match is a reward. Every value must fit in 16 unsigned bits.
type Scores struct {
	Gap   int
	Match int
	Miss  int
}

// DefaultScores returns gap 1, match 2, mismatch 1.
func DefaultScores() Scores {
	return Scores{Gap: 1, Match: 2, Miss: 1}
}

// Validate reports ErrInvalidConfig for a value outside [0, 65535].
func (s Scores) Validate() error {
	for _, f := range [...]struct {
		name string
		v    int
	}{{"gap", s.Gap}, {"match", s.Match}, {"miss", s.Miss}} {
		if f.v < 0 || f.v > math.MaxUint16 {
			return fmt.Errorf("%w: %s score %d outside [0, %d]", ErrInvalidConfig, f.name, f.v, math.MaxUint16)
		}
	}
	return nil
}

func (s Scores) params() dp.Params {
	return dp.Params{Gap: int32(s.Gap), Match: int32(s.Match), Miss: int32(s.Miss)}
}
