package phrase

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/oklog/ulid/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Placeholder is what the selector returns when there are no phrases at all.
const Placeholder = "Aún no hay frases. ¡Agrega la tuya aquí abajo!"

// DefaultPhrases seeds every new store, in display order.
var DefaultPhrases = []string{
	"¡Ánimo! Cada línea te acerca a la meta.",
	"Ese bug se arregla con una buena mateada.",
	"Respira, cuenta hasta diez y vuelve al código.",
	"No hay error que aguante un buen refactor.",
	"Hoy el deploy sale sin drama, vas a ver.",
}

// Validation errors returned by Store.Add.
var (
	ErrEmptyPhrase     = errors.New("phrase cannot be empty")
	ErrDuplicatePhrase = errors.New("phrase already exists")
)

// Phrase is a single entry in the phrase list.
type Phrase struct {
	ID      string    `json:"id" yaml:"id"`
	Text    string    `json:"text" yaml:"text"`
	AddedAt time.Time `json:"added_at" yaml:"added_at"`
	Default bool      `json:"default" yaml:"default"`
}

// NewPhrase creates a Phrase with a generated ULID.
// The text is trimmed; an all-whitespace text is rejected.
func NewPhrase(text string) (*Phrase, error) {
	text = Trim(text)
	if text == "" {
		return nil, ErrEmptyPhrase
	}

	now := time.Now()
	id, err := ulid.New(ulid.Timestamp(now), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ULID: %w", err)
	}

	return &Phrase{
		ID:      id.String(),
		Text:    text,
		AddedAt: now,
	}, nil
}

// Trim removes leading and trailing Unicode whitespace and byte order marks.
func Trim(text string) string {
	return strings.TrimFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

// Key returns the folded form of the phrase text used for duplicate checks.
func (p Phrase) Key() string {
	return FoldKey(p.Text)
}

// FoldKey normalizes text to NFC and applies Unicode case folding, so
// "ÁNIMO" and "ánimo" (composed or decomposed) share a key.
func FoldKey(text string) string {
	return cases.Fold().String(norm.NFC.String(text))
}
