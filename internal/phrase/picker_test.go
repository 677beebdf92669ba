package phrase

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(42, 7))
}

func TestPicker_EmptyStoreReturnsPlaceholder(t *testing.T) {
	p := NewPicker(NewEmptyStore(), seeded())

	assert.Equal(t, Placeholder, p.Pick(""))
	assert.Equal(t, Placeholder, p.Pick(Placeholder))
}

func TestPicker_SinglePhraseRepeats(t *testing.T) {
	s := NewEmptyStore()
	_, err := s.Add("Solo yo.")
	require.NoError(t, err)

	p := NewPicker(s, seeded())
	last := ""
	for i := 0; i < 20; i++ {
		last = p.Pick(last)
		assert.Equal(t, "Solo yo.", last)
	}
}

func TestPicker_NeverRepeatsConsecutively(t *testing.T) {
	p := NewPicker(NewStore(), seeded())

	last := ""
	for i := 0; i < 1000; i++ {
		next := p.Pick(last)
		assert.NotEqual(t, last, next, "iteration %d", i)
		last = next
	}
}

func TestPicker_TwoPhrasesAlternate(t *testing.T) {
	s := NewEmptyStore()
	_, err := s.Add("uno")
	require.NoError(t, err)
	_, err = s.Add("dos")
	require.NoError(t, err)

	p := NewPicker(s, seeded())
	first := p.Pick("")
	second := p.Pick(first)
	third := p.Pick(second)

	assert.NotEqual(t, first, second)
	assert.Equal(t, first, third)
}

func TestPicker_CoversEveryOtherPhrase(t *testing.T) {
	s := NewStore()
	p := NewPicker(s, seeded())

	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		seen[p.Pick(DefaultPhrases[0])] = true
	}

	assert.Len(t, seen, 4)
	assert.False(t, seen[DefaultPhrases[0]])
}

func TestPicker_UnknownLastUsesWholeList(t *testing.T) {
	p := NewPicker(NewStore(), seeded())

	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		seen[p.Pick("not in the list")] = true
	}

	assert.Len(t, seen, 5)
}

func TestPicker_SeesNewPhrases(t *testing.T) {
	s := NewEmptyStore()
	p := NewPicker(s, seeded())
	assert.Equal(t, Placeholder, p.Pick(""))

	_, err := s.Add("primera")
	require.NoError(t, err)
	assert.Equal(t, "primera", p.Pick(Placeholder))
}
