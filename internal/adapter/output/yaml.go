package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/animo/internal/phrase"
	"github.com/jmylchreest/animo/internal/theme"
)

// YAMLFormatter formats listings as YAML.
type YAMLFormatter struct {
	opts FormatterOptions
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(opts FormatterOptions) *YAMLFormatter {
	return &YAMLFormatter{opts: opts}
}

// FormatPhrases writes phrases as a YAML sequence.
func (f *YAMLFormatter) FormatPhrases(w io.Writer, phrases []phrase.Phrase) error {
	return f.encode(w, nonNil(phrases))
}

// FormatSchemes writes schemes as a YAML sequence.
func (f *YAMLFormatter) FormatSchemes(w io.Writer, schemes []theme.Scheme) error {
	return f.encode(w, nonNil(schemes))
}

func (f *YAMLFormatter) encode(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
