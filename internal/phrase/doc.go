// Package phrase holds the motivational phrase list and the random selector
// that avoids showing the same phrase twice in a row.
//
// The list starts with five built-in phrases and only ever grows. Phrases are
// compared by a folded key (NFC-normalized, case-folded text), so two phrases
// that differ only in letter case are duplicates.
package phrase
