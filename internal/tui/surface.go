package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/jmylchreest/animo/internal/theme"
	"github.com/jmylchreest/animo/internal/widget"
)

// textElement is a plain text region.
type textElement struct {
	text  string
	attrs map[string]string
}

func (e *textElement) ReadText() string      { return e.text }
func (e *textElement) WriteText(text string) { e.text = text }

func (e *textElement) SetAttr(name, value string) {
	e.attrs[name] = value
}

// inputElement exposes the add-phrase text input as an element.
type inputElement struct {
	input *textinput.Model
	attrs map[string]string
}

func (e *inputElement) ReadText() string      { return e.input.Value() }
func (e *inputElement) WriteText(text string) { e.input.SetValue(text) }

func (e *inputElement) SetAttr(name, value string) {
	e.attrs[name] = value
}

// rootState stores the applied theme and derives a palette from it.
type rootState struct {
	background string
	props      map[string]string
	palette    theme.Palette
	dirty      bool
}

func (r *rootState) SetBackground(value string) {
	r.background = value
	r.dirty = true
}

func (r *rootState) SetProperty(name, value string) {
	r.props[name] = value
	r.dirty = true
}

// Palette returns the palette for the applied values, or the default palette
// before anything has been applied.
func (r *rootState) Palette() theme.Palette {
	if r.dirty {
		r.palette = theme.NewPalette(r.background, r.props)
		r.dirty = false
	}
	return r.palette
}

// termSurface is the terminal implementation of widget.Surface. Key handling
// in Model fires the registered handlers; View reads the element texts back.
type termSurface struct {
	elements   map[widget.ElementID]widget.Element
	onActivate map[widget.ElementID]func()
	onSubmit   map[widget.ElementID]func(*widget.SubmitEvent)
	root       *rootState
	input      textinput.Model
}

func newTermSurface() *termSurface {
	input := textinput.New()
	input.Placeholder = "Escribe una frase nueva..."
	input.CharLimit = 200
	input.Prompt = "› "

	s := &termSurface{
		elements:   make(map[widget.ElementID]widget.Element),
		onActivate: make(map[widget.ElementID]func()),
		onSubmit:   make(map[widget.ElementID]func(*widget.SubmitEvent)),
		root: &rootState{
			props:   make(map[string]string),
			palette: theme.DefaultPalette(),
		},
		input: input,
	}

	for _, id := range []widget.ElementID{
		widget.PhraseDisplay, widget.ShowButton, widget.Counter, widget.AddForm, widget.Feedback,
	} {
		s.elements[id] = &textElement{attrs: make(map[string]string)}
	}
	s.elements[widget.AddInput] = &inputElement{input: &s.input, attrs: make(map[string]string)}

	return s
}

// Lookup implements widget.Surface.
func (s *termSurface) Lookup(id widget.ElementID) (widget.Element, bool) {
	e, ok := s.elements[id]
	return e, ok
}

// Root implements widget.Surface.
func (s *termSurface) Root() theme.Root {
	return s.root
}

// OnActivate implements widget.Surface.
func (s *termSurface) OnActivate(id widget.ElementID, fn func()) bool {
	if _, ok := s.elements[id]; !ok {
		return false
	}
	s.onActivate[id] = fn
	return true
}

// OnSubmit implements widget.Surface.
func (s *termSurface) OnSubmit(id widget.ElementID, fn func(*widget.SubmitEvent)) bool {
	if _, ok := s.elements[id]; !ok {
		return false
	}
	s.onSubmit[id] = fn
	return true
}

func (s *termSurface) activate(id widget.ElementID) bool {
	fn, ok := s.onActivate[id]
	if ok {
		fn()
	}
	return ok
}

func (s *termSurface) submit(id widget.ElementID) *widget.SubmitEvent {
	ev := &widget.SubmitEvent{}
	if fn, ok := s.onSubmit[id]; ok {
		fn(ev)
	}
	return ev
}

func (s *termSurface) text(id widget.ElementID) string {
	if e, ok := s.elements[id]; ok {
		return e.ReadText()
	}
	return ""
}

func (s *termSurface) attr(id widget.ElementID, name string) string {
	switch e := s.elements[id].(type) {
	case *textElement:
		return e.attrs[name]
	case *inputElement:
		return e.attrs[name]
	}
	return ""
}
