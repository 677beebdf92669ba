package output

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/animo/internal/phrase"
	"github.com/jmylchreest/animo/internal/theme"
)

// JSONFormatter formats listings as JSON.
type JSONFormatter struct {
	opts FormatterOptions
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts FormatterOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// FormatPhrases writes phrases as a JSON array.
func (f *JSONFormatter) FormatPhrases(w io.Writer, phrases []phrase.Phrase) error {
	return f.encode(w, nonNil(phrases))
}

// FormatSchemes writes schemes as a JSON array.
func (f *JSONFormatter) FormatSchemes(w io.Writer, schemes []theme.Scheme) error {
	return f.encode(w, nonNil(schemes))
}

func (f *JSONFormatter) encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

// nonNil makes empty listings encode as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
