package phrase

import (
	"sync"
)

// Store is the ordered, append-only phrase list.
// Order is insertion order; uniqueness is enforced by folded key on insert.
type Store struct {
	mu      sync.RWMutex
	phrases []Phrase
	keys    map[string]int // folded key -> slice index
}

// NewStore creates a store seeded with DefaultPhrases.
func NewStore() *Store {
	s := NewEmptyStore()
	for _, text := range DefaultPhrases {
		p, err := NewPhrase(text)
		if err != nil {
			// Defaults are non-empty constants.
			panic(err)
		}
		p.Default = true
		s.insert(*p)
	}
	return s
}

// NewEmptyStore creates a store without the default phrases.
func NewEmptyStore() *Store {
	return &Store{
		phrases: make([]Phrase, 0, len(DefaultPhrases)),
		keys:    make(map[string]int),
	}
}

// Add trims text and appends it if no phrase with the same folded key exists.
// Returns ErrEmptyPhrase or ErrDuplicatePhrase without modifying the store.
func (s *Store) Add(text string) (Phrase, error) {
	text = Trim(text)
	if text == "" {
		return Phrase{}, ErrEmptyPhrase
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.keys[FoldKey(text)]; exists {
		return Phrase{}, ErrDuplicatePhrase
	}

	p, err := NewPhrase(text)
	if err != nil {
		return Phrase{}, err
	}
	s.insert(*p)
	return *p, nil
}

// insert appends p and indexes its key. Caller holds the lock or owns s.
func (s *Store) insert(p Phrase) {
	s.keys[p.Key()] = len(s.phrases)
	s.phrases = append(s.phrases, p)
}

// Contains reports whether a phrase with the same folded key exists.
func (s *Store) Contains(text string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.keys[FoldKey(Trim(text))]
	return exists
}

// IndexOf returns the index of the phrase whose text equals text exactly,
// or -1.
func (s *Store) IndexOf(text string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.keys[FoldKey(text)]
	if !ok || s.phrases[idx].Text != text {
		return -1
	}
	return idx
}

// Count returns the number of phrases.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.phrases)
}

// At returns the phrase at index i.
func (s *Store) At(i int) Phrase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phrases[i]
}

// All returns a copy of the phrases in insertion order.
func (s *Store) All() []Phrase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]Phrase, len(s.phrases))
	copy(result, s.phrases)
	return result
}

// Texts returns the phrase texts in insertion order.
func (s *Store) Texts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]string, len(s.phrases))
	for i, p := range s.phrases {
		result[i] = p.Text
	}
	return result
}
