package main

import (
	"math/rand/v2"
)

// newRand returns a seeded generator, or nil for a random seed.
func newRand(seed uint64, seeded bool) *rand.Rand {
	if !seeded {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
