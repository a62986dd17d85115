package markov

import "math/rand/v2"

// Source picks one of n equally likely choices. IntN must return a value in
// [0, n) and is only called with n > 0. *rand.Rand from math/rand/v2
// satisfies Source, which makes seeded, reproducible generation easy.
type Source interface {
	IntN(n int) int
}

// globalSource draws from the math/rand/v2 top-level functions, which are
// safe for concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// NewSeededSource returns a deterministic Source seeded with seed. The
// returned Source is not safe for concurrent use.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
