package widget

import "github.com/jmylchreest/animo/internal/theme"

// HeadlessElement is an in-memory Element.
type HeadlessElement struct {
	Text  string
	Attrs map[string]string
}

func (e *HeadlessElement) ReadText() string      { return e.Text }
func (e *HeadlessElement) WriteText(text string) { e.Text = text }

func (e *HeadlessElement) SetAttr(name, value string) {
	if e.Attrs == nil {
		e.Attrs = make(map[string]string)
	}
	e.Attrs[name] = value
}

// HeadlessRoot records applied theme values.
type HeadlessRoot struct {
	Background string
	Properties map[string]string
}

func (r *HeadlessRoot) SetBackground(value string) { r.Background = value }

func (r *HeadlessRoot) SetProperty(name, value string) {
	if r.Properties == nil {
		r.Properties = make(map[string]string)
	}
	r.Properties[name] = value
}

// HeadlessSurface is a Surface without any rendering. Events are fired with
// Activate and Submit.
type HeadlessSurface struct {
	elements map[ElementID]*HeadlessElement
	onActive map[ElementID]func()
	onSubmit map[ElementID]func(*SubmitEvent)
	root     *HeadlessRoot
}

// NewHeadlessSurface creates a surface holding the given elements, or every
// element in AllElements when none are given.
func NewHeadlessSurface(ids ...ElementID) *HeadlessSurface {
	if len(ids) == 0 {
		ids = AllElements
	}
	s := &HeadlessSurface{
		elements: make(map[ElementID]*HeadlessElement, len(ids)),
		onActive: make(map[ElementID]func()),
		onSubmit: make(map[ElementID]func(*SubmitEvent)),
		root:     &HeadlessRoot{Properties: make(map[string]string)},
	}
	for _, id := range ids {
		s.elements[id] = &HeadlessElement{Attrs: make(map[string]string)}
	}
	return s
}

// Lookup implements Surface.
func (s *HeadlessSurface) Lookup(id ElementID) (Element, bool) {
	e, ok := s.elements[id]
	if !ok {
		return nil, false
	}
	return e, true
}

// Root implements Surface.
func (s *HeadlessSurface) Root() theme.Root {
	return s.root
}

// OnActivate implements Surface.
func (s *HeadlessSurface) OnActivate(id ElementID, fn func()) bool {
	if _, ok := s.elements[id]; !ok {
		return false
	}
	s.onActive[id] = fn
	return true
}

// OnSubmit implements Surface.
func (s *HeadlessSurface) OnSubmit(id ElementID, fn func(*SubmitEvent)) bool {
	if _, ok := s.elements[id]; !ok {
		return false
	}
	s.onSubmit[id] = fn
	return true
}

// Element returns the element with the given ID, or nil.
func (s *HeadlessSurface) Element(id ElementID) *HeadlessElement {
	return s.elements[id]
}

// Text returns the text of the element with the given ID, or "".
func (s *HeadlessSurface) Text(id ElementID) string {
	if e, ok := s.elements[id]; ok {
		return e.Text
	}
	return ""
}

// Theme returns the recorded theme values.
func (s *HeadlessSurface) Theme() *HeadlessRoot {
	return s.root
}

// Activate fires the activation handler of id. Returns false if none is
// registered.
func (s *HeadlessSurface) Activate(id ElementID) bool {
	fn, ok := s.onActive[id]
	if !ok {
		return false
	}
	fn()
	return true
}

// Submit fires the submit handler of id and returns the event it received.
func (s *HeadlessSurface) Submit(id ElementID) (*SubmitEvent, bool) {
	fn, ok := s.onSubmit[id]
	if !ok {
		return nil, false
	}
	ev := &SubmitEvent{}
	fn(ev)
	return ev, true
}
