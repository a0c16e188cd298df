package trajectory

import "math/rand"

// Seed drives the pseudo-random walk that places control points. It is a
// pure function of its inputs: the same seed always reproduces the same
// path bit for bit.
type Seed uint32

// Fixed base seeds. Historical anchors and the status-quo projection use
// constant seeds; intervention projections derive theirs from the vector
// hash so every distinct protocol gets its own reproducible path.
const (
	SeedHistorical Seed = 42
	SeedStatusQuo  Seed = 43
	SeedHealthy    Seed = 100

	interventionBase = 44
)

// InterventionSeed combines the fixed base with a vector hash, wrapping
// at 32 bits.
func InterventionSeed(vectorHash uint32) Seed {
	return Seed((uint64(interventionBase) + uint64(vectorHash)) & 0xFFFFFFFF)
}

// Source returns a fresh deterministic generator for the seed.
func (s Seed) Source() *rand.Rand {
	return rand.New(rand.NewSource(int64(s)))
}
