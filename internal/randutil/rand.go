// Package randutil derives reproducible math/rand/v2 sources for deals and
// evaluator rollouts.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewOrTime returns New(seed), or a time-seeded source when seed is zero.
func NewOrTime(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return New(seed)
}

// Split derives n independent seeds from rng, one per worker.
func Split(rng *rand.Rand, n int) []int64 {
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = rng.Int64()
	}
	return seeds
}

// SeedFrom folds a set of 64-bit values into a single seed.
func SeedFrom(vals ...uint64) int64 {
	h := uint64(goldenRatio64)
	for _, v := range vals {
		h = mix(h ^ v)
	}
	return int64(h)
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
