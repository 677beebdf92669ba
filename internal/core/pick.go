// Package core provides selection helpers shared by the phrase picker and
// the theme selector.
package core

import "math/rand/v2"

// PickExcluding returns a uniformly random index in [0, n) that differs from
// exclude. When exclude is outside [0, n) every index is a candidate.
// n must be at least 1; with n == 1 the only index is returned even if it
// equals exclude.
func PickExcluding(rng *rand.Rand, n, exclude int) int {
	if n <= 1 {
		return 0
	}
	if exclude < 0 || exclude >= n {
		return rng.IntN(n)
	}
	idx := rng.IntN(n - 1)
	if idx >= exclude {
		idx++
	}
	return idx
}
