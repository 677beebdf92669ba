package widget

import "github.com/jmylchreest/animo/internal/theme"

// ElementID identifies an element on a Surface.
type ElementID string

// Elements the controller looks up.
const (
	PhraseDisplay ElementID = "phrase-display"
	ShowButton    ElementID = "show-button"
	Counter       ElementID = "counter"
	AddForm       ElementID = "add-form"
	AddInput      ElementID = "add-input"
	Feedback      ElementID = "feedback"
)

// AllElements lists every element ID in layout order.
var AllElements = []ElementID{PhraseDisplay, ShowButton, Counter, AddForm, AddInput, Feedback}

// AttrState is the feedback element attribute carrying the FeedbackState.
const AttrState = "state"

// FeedbackState is the type of a feedback message.
type FeedbackState string

const (
	StateInfo    FeedbackState = "info"
	StateSuccess FeedbackState = "success"
	StateError   FeedbackState = "error"
)

// Element is a single UI element.
type Element interface {
	ReadText() string
	WriteText(text string)
	SetAttr(name, value string)
}

// SubmitEvent is passed to submit handlers.
type SubmitEvent struct {
	prevented bool
}

// PreventDefault suppresses the surface's default submit behavior.
func (e *SubmitEvent) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *SubmitEvent) DefaultPrevented() bool {
	return e.prevented
}

// Surface is the UI binding the controller talks to.
type Surface interface {
	// Lookup returns the element with the given ID, if the surface has one.
	Lookup(id ElementID) (Element, bool)
	// Root returns the theming target.
	Root() theme.Root
	// OnActivate registers fn to run when the element is activated.
	// Returns false if the element does not exist.
	OnActivate(id ElementID, fn func()) bool
	// OnSubmit registers fn to run when the form element is submitted.
	// Returns false if the element does not exist.
	OnSubmit(id ElementID, fn func(*SubmitEvent)) bool
}
