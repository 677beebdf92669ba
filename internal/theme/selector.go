package theme

import (
	"math/rand/v2"

	"github.com/jmylchreest/animo/internal/core"
)

// Selector applies random schemes, never the same one twice in a row when
// more than one scheme exists.
type Selector struct {
	schemes []Scheme
	last    int
	rng     *rand.Rand
}

// NewSelector creates a selector over schemes. A nil rng gets a randomly
// seeded one.
func NewSelector(schemes []Scheme, rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Selector{
		schemes: schemes,
		last:    -1,
		rng:     rng,
	}
}

// ApplyRandom picks a scheme different from the last applied one, applies it
// to root and records it. Returns false without touching root when there are
// no schemes.
func (s *Selector) ApplyRandom(root Root) (Scheme, bool) {
	if len(s.schemes) == 0 {
		return Scheme{}, false
	}

	next := core.PickExcluding(s.rng, len(s.schemes), s.last)
	s.last = next

	scheme := s.schemes[next]
	scheme.Apply(root)
	return scheme, true
}

// Last returns the index of the last applied scheme, or -1.
func (s *Selector) Last() int {
	return s.last
}

// Schemes returns the schemes the selector chooses from.
func (s *Selector) Schemes() []Scheme {
	return s.schemes
}
