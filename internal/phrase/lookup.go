package phrase

import "strings"

// LookupByID finds a phrase by its ULID.
// Returns nil if not found.
func LookupByID(phrases []Phrase, id string) *Phrase {
	for i := range phrases {
		if phrases[i].ID == id {
			return &phrases[i]
		}
	}
	return nil
}

// LookupByIndex finds a phrase by its index (1-based for user-friendliness).
// Returns nil if index is out of bounds.
func LookupByIndex(phrases []Phrase, index int) *Phrase {
	idx := index - 1
	if idx < 0 || idx >= len(phrases) {
		return nil
	}
	return &phrases[idx]
}

// Search returns the phrases whose folded text contains the folded term.
func Search(phrases []Phrase, term string) []Phrase {
	if term == "" {
		return phrases
	}

	folded := FoldKey(term)
	var result []Phrase
	for _, p := range phrases {
		if strings.Contains(p.Key(), folded) {
			result = append(result, p)
		}
	}
	return result
}
