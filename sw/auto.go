package sw

const defaultCeiling = 1 << 26

// Auto runs SIMD unless the matrix would exceed Ceiling cells, in which case
// it runs LowMemory. Zero Ceiling means 1<<26.
type Auto struct {
	Ceiling int
}

func (Auto) Name() string { return "auto" }

func (a Auto) Align(query, target []byte, scores Scores) (Result, error) {
	return a.pick(len(query), len(target)).Align(query, target, scores)
}

func (a Auto) pick(n, m int) Engine {
	ceiling := a.Ceiling
	if ceiling <= 0 {
		ceiling = defaultCeiling
	}
	if m > 0 && n > ceiling/m {
		return LowMemory{}
	}
	return SIMD{}
}
