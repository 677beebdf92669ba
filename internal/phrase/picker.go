package phrase

import (
	"math/rand/v2"

	"github.com/jmylchreest/animo/internal/core"
)

// Picker selects random phrases from a Store.
type Picker struct {
	store *Store
	rng   *rand.Rand
}

// NewPicker creates a picker over store. A nil rng gets a randomly seeded one.
func NewPicker(store *Store, rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Picker{store: store, rng: rng}
}

// Pick returns a random phrase text that differs from last whenever the store
// holds at least two phrases. With a single phrase it returns that phrase, and
// with none it returns Placeholder. Pick does not record what it returned.
func (p *Picker) Pick(last string) string {
	p.store.mu.RLock()
	defer p.store.mu.RUnlock()

	switch n := len(p.store.phrases); n {
	case 0:
		return Placeholder
	case 1:
		return p.store.phrases[0].Text
	default:
		exclude := -1
		if idx, ok := p.store.keys[FoldKey(last)]; ok && p.store.phrases[idx].Text == last {
			exclude = idx
		}
		return p.store.phrases[core.PickExcluding(p.rng, n, exclude)].Text
	}
}
