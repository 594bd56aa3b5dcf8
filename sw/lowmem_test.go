package sw

import (
	"math/rand"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plantedPair builds sequences whose flanks never match each other (query
// flanks use A/C, target flanks G/T), with one shared segment embedded at
// the given offsets.
func plantedPair(rng *rand.Rand, n, m, qAt, tAt, size int) (query, target, segment []byte) {
	segment = randomSeq(rng, size, "ACGT")
	query = randomSeq(rng, n, "AC")
	target = randomSeq(rng, m, "GT")
	copy(query[qAt:], segment)
	copy(target[tAt:], segment)
	return query, target, segment
}

func TestLowMemoryPlanted(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	query, target, segment := plantedPair(rng, 900, 700, 300, 120, 50)
	want := Result{Query: string(segment), Target: string(segment), Score: 100, MaxX: 170, MaxY: 350}
	for _, budget := range []int{0, 1, 64, 5000} {
		got, err := LowMemory{BandCells: budget}.Align(query, target, DefaultScores())
		require.NoError(t, err)
		assert.Equal(t, want, got, "budget=%d", budget)
	}
}

func TestLowMemoryMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for round := 0; round < 20; round++ {
		query := randomSeq(rng, 50+rng.Intn(400), "ACGT")
		target := mutate(rng, query[rng.Intn(len(query)/2):], "ACGT")
		if round%2 == 1 {
			query, target = target, query
		}
		scores := []Scores{{1, 2, 1}, {2, 3, 3}, {0, 1, 0}}[round%3]
		want, err := Scalar{}.Align(query, target, scores)
		require.NoError(t, err)
		for _, budget := range []int{1, 100, 1 << 12} {
			got, err := LowMemory{BandCells: budget}.Align(query, target, scores)
			require.NoError(t, err)
			assert.Equal(t, want, got, "round %d budget %d", round, budget)
		}
	}
}

func TestLowMemoryLarge(t *testing.T) {
	if testing.Short() {
		t.Skip("10k x 10k alignment")
	}
	const n, m = 10000, 10000
	rng := rand.New(rand.NewSource(1))
	query, target, segment := plantedPair(rng, n, m, 6000, 3000, 200)

	runtime.GC()
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	got, err := LowMemory{}.Align(query, target, DefaultScores())
	runtime.ReadMemStats(&after)
	require.NoError(t, err)

	assert.Equal(t, Result{
		Query:  string(segment),
		Target: string(segment),
		Score:  400,
		MaxX:   3200,
		MaxY:   6200,
	}, got)

	// A full matrix of int32 scores would take 4·n·m bytes.
	allocated := after.TotalAlloc - before.TotalAlloc
	assert.Less(t, allocated, uint64(n*m/4), "allocated %d bytes", allocated)
}
