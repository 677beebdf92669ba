// Package output provides output formatters for phrase and scheme listings.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jmylchreest/animo/internal/phrase"
	"github.com/jmylchreest/animo/internal/theme"
)

// Formatter formats phrases and color schemes for output.
type Formatter interface {
	// FormatPhrases writes formatted phrases to the writer.
	FormatPhrases(w io.Writer, phrases []phrase.Phrase) error
	// FormatSchemes writes formatted schemes to the writer.
	FormatSchemes(w io.Writer, schemes []theme.Scheme) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
	FormatIDs   FormatType = "ids"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (FormatType, error) {
	switch f := FormatType(strings.ToLower(name)); f {
	case FormatPlain, FormatJSON, FormatYAML, FormatIDs:
		return f, nil
	case "":
		return FormatPlain, nil
	default:
		return "", fmt.Errorf("unknown format %q (use plain, json, yaml or ids)", name)
	}
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(opts)
	case FormatYAML:
		return NewYAMLFormatter(opts)
	case FormatIDs:
		return NewIDsFormatter()
	case FormatPlain:
		fallthrough
	default:
		return NewPlainFormatter(opts)
	}
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	Template  string // Custom template for plain phrase output
	ShowIndex bool   // Show 1-based index prefix
	ShowAge   bool   // Show when the phrase was added
	Swatches  bool   // Render color swatches for schemes (plain only)
}

// DefaultFormatterOptions returns sensible defaults for terminal output.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{
		ShowIndex: true,
		ShowAge:   false,
		Swatches:  true,
	}
}
