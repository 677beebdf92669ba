// Package widget wires the phrase list and the theme selector to a UI surface.
//
// A Controller owns all widget state (phrase list, last shown phrase, shown
// count, theme selector) and registers its handlers on an abstract Surface.
// Surfaces are looked up by element ID; a missing element turns the matching
// action into a silent no-op. The terminal UI implements Surface, and tests
// use a headless one.
package widget
