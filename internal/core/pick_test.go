package core

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickExcluding_NeverReturnsExcluded(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for n := 2; n <= 6; n++ {
		for exclude := 0; exclude < n; exclude++ {
			for i := 0; i < 200; i++ {
				idx := PickExcluding(rng, n, exclude)
				assert.NotEqual(t, exclude, idx)
				assert.GreaterOrEqual(t, idx, 0)
				assert.Less(t, idx, n)
			}
		}
	}
}

func TestPickExcluding_CoversAllOtherIndices(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	seen := make(map[int]bool)

	for i := 0; i < 500; i++ {
		seen[PickExcluding(rng, 5, 2)] = true
	}

	assert.Equal(t, map[int]bool{0: true, 1: true, 3: true, 4: true}, seen)
}

func TestPickExcluding_EdgeCases(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))

	assert.Equal(t, 0, PickExcluding(rng, 1, 0), "single candidate is returned even if excluded")
	assert.Equal(t, 0, PickExcluding(rng, 0, -1))

	for i := 0; i < 50; i++ {
		idx := PickExcluding(rng, 3, -1)
		assert.True(t, idx >= 0 && idx < 3)
	}
}
