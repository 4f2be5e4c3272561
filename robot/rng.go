package robot

import "math/rand"

// Source is the single uniform random stream a simulation draws from.
// *rand.Rand satisfies it. Threading one Source through every sampling
// call keeps a seeded run fully reproducible.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic Source for the given seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
