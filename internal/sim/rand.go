package sim

import "math/rand"

// Rand is the only source of randomness a World uses. *rand.Rand satisfies
// it; tests inject scripted sequences.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded source.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
