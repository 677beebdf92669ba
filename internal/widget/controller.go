package widget

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"text/template"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/animo/internal/phrase"
	"github.com/jmylchreest/animo/internal/theme"
)

// DefaultCounterTemplate renders the counter label.
const DefaultCounterTemplate = "Frases mostradas: {{.Count}}"

// Feedback messages.
const (
	MsgEmptyPhrase     = "Por favor, escribe una frase antes de agregarla."
	MsgDuplicatePhrase = "Esa frase ya está en la lista."
	MsgPhraseAdded     = "¡Frase agregada con éxito!"
	MsgAddFailed       = "No se pudo agregar la frase."
)

// Options configures a Controller.
type Options struct {
	Logger          *slog.Logger
	Store           *phrase.Store  // nil = store seeded with the default phrases
	Schemes         []theme.Scheme // nil = theme.DefaultSchemes()
	Rand            *rand.Rand     // nil = randomly seeded
	CounterTemplate string         // empty = DefaultCounterTemplate
}

// CounterData is the data passed to the counter template.
type CounterData struct {
	Count int
}

// Controller owns the widget state and implements its actions.
// It is not safe for concurrent use; surfaces dispatch events one at a time.
type Controller struct {
	logger  *slog.Logger
	store   *phrase.Store
	picker  *phrase.Picker
	themes  *theme.Selector
	counter *template.Template
	surface Surface

	lastPhrase string
	shown      int
}

// New creates a controller. It returns an error if the counter template does
// not parse.
func New(opts Options) (*Controller, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	store := opts.Store
	if store == nil {
		store = phrase.NewStore()
	}

	schemes := opts.Schemes
	if schemes == nil {
		schemes = theme.DefaultSchemes()
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	counter, err := ParseCounterTemplate(opts.CounterTemplate)
	if err != nil {
		return nil, err
	}

	return &Controller{
		logger:  logger,
		store:   store,
		picker:  phrase.NewPicker(store, rng),
		themes:  theme.NewSelector(schemes, rng),
		counter: counter,
	}, nil
}

// ParseCounterTemplate parses a counter label template. An empty string
// yields DefaultCounterTemplate. Templates may use {{.Count}} and the
// comma function ({{comma .Count}} renders 1,234).
func ParseCounterTemplate(text string) (*template.Template, error) {
	if text == "" {
		text = DefaultCounterTemplate
	}
	tmpl, err := template.New("counter").Funcs(template.FuncMap{
		"comma": func(n int) string { return humanize.Comma(int64(n)) },
	}).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("invalid counter template: %w", err)
	}
	return tmpl, nil
}

// Bind attaches the controller to a surface: the show button triggers
// ShowRandomPhrase, the add form triggers HandleAddPhrase, and the counter is
// rendered once.
func (c *Controller) Bind(s Surface) {
	c.surface = s

	if !s.OnActivate(ShowButton, c.ShowRandomPhrase) {
		c.logger.Debug("surface has no element, show action unbound", "element", ShowButton)
	}
	if !s.OnSubmit(AddForm, c.HandleAddPhrase) {
		c.logger.Debug("surface has no element, add action unbound", "element", AddForm)
	}

	c.updateCounter()
}

// ShowRandomPhrase displays a random phrase different from the last one,
// bumps the counter, applies a random color scheme and clears the feedback.
func (c *Controller) ShowRandomPhrase() {
	display, ok := c.lookup(PhraseDisplay)
	if !ok {
		return
	}

	text := c.picker.Pick(c.lastPhrase)
	display.WriteText(text)
	c.lastPhrase = text
	c.shown++

	c.updateCounter()
	c.applyRandomScheme()
	c.SetFeedback("", StateInfo)
}

// HandleAddPhrase validates the add-input text and appends it to the list.
func (c *Controller) HandleAddPhrase(ev *SubmitEvent) {
	if ev != nil {
		ev.PreventDefault()
	}

	input, ok := c.lookup(AddInput)
	if !ok {
		return
	}

	p, err := c.store.Add(input.ReadText())
	switch {
	case errors.Is(err, phrase.ErrEmptyPhrase):
		c.SetFeedback(MsgEmptyPhrase, StateError)
		return
	case errors.Is(err, phrase.ErrDuplicatePhrase):
		c.SetFeedback(MsgDuplicatePhrase, StateError)
		return
	case err != nil:
		c.logger.Warn("failed to add phrase", "error", err)
		c.SetFeedback(MsgAddFailed, StateError)
		return
	}

	c.logger.Debug("phrase added", "id", p.ID, "count", c.store.Count())
	input.WriteText("")
	c.SetFeedback(MsgPhraseAdded, StateSuccess)
}

// SetFeedback writes a typed feedback message.
func (c *Controller) SetFeedback(message string, state FeedbackState) {
	fb, ok := c.lookup(Feedback)
	if !ok {
		return
	}
	fb.WriteText(message)
	fb.SetAttr(AttrState, string(state))
}

// SetCounterTemplate replaces the counter template and re-renders the label.
// The previous template is kept if text does not parse.
func (c *Controller) SetCounterTemplate(text string) error {
	tmpl, err := ParseCounterTemplate(text)
	if err != nil {
		return err
	}
	c.counter = tmpl
	c.updateCounter()
	return nil
}

// CounterText renders the counter label for the current count.
func (c *Controller) CounterText() string {
	var buf bytes.Buffer
	if err := c.counter.Execute(&buf, CounterData{Count: c.shown}); err != nil {
		c.logger.Warn("failed to render counter template", "error", err)
		return fmt.Sprintf("Frases mostradas: %d", c.shown)
	}
	return buf.String()
}

// ShownCount returns how many phrases have been displayed.
func (c *Controller) ShownCount() int {
	return c.shown
}

// LastPhrase returns the last displayed phrase, if any.
func (c *Controller) LastPhrase() (string, bool) {
	return c.lastPhrase, c.lastPhrase != ""
}

// LastScheme returns the last applied color scheme, if any.
func (c *Controller) LastScheme() (theme.Scheme, bool) {
	idx := c.themes.Last()
	if idx < 0 {
		return theme.Scheme{}, false
	}
	return c.themes.Schemes()[idx], true
}

// Store returns the phrase list.
func (c *Controller) Store() *phrase.Store {
	return c.store
}

func (c *Controller) updateCounter() {
	label, ok := c.lookup(Counter)
	if !ok {
		return
	}
	label.WriteText(c.CounterText())
}

func (c *Controller) applyRandomScheme() {
	root := c.surface.Root()
	if root == nil {
		return
	}
	if s, ok := c.themes.ApplyRandom(root); ok {
		c.logger.Debug("applied color scheme", "scheme", s.Name)
	}
}

func (c *Controller) lookup(id ElementID) (Element, bool) {
	if c.surface == nil {
		return nil, false
	}
	e, ok := c.surface.Lookup(id)
	if !ok || e == nil {
		c.logger.Debug("surface element missing", "element", id)
		return nil, false
	}
	return e, true
}
