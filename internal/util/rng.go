package util

import "math/rand"

// New returns a deterministic generator. Seed 0 is mapped to 1 so an unset
// flag still gives a reproducible stream.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}

// Derive gives worker w its own stream for job i, stable across runs.
func Derive(seed int64, w, i int) *rand.Rand {
	return New(seed + int64(w)*7919 + int64(i))
}
