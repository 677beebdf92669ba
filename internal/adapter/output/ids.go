package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/animo/internal/phrase"
	"github.com/jmylchreest/animo/internal/theme"
)

// IDsFormatter outputs just the IDs, one per line.
// Phrases print their ULID, schemes their name.
type IDsFormatter struct{}

// NewIDsFormatter creates a new IDs formatter.
func NewIDsFormatter() *IDsFormatter {
	return &IDsFormatter{}
}

// FormatPhrases writes phrase IDs to the writer, one per line.
func (f *IDsFormatter) FormatPhrases(w io.Writer, phrases []phrase.Phrase) error {
	for _, p := range phrases {
		if _, err := fmt.Fprintln(w, p.ID); err != nil {
			return err
		}
	}
	return nil
}

// FormatSchemes writes scheme names to the writer, one per line.
func (f *IDsFormatter) FormatSchemes(w io.Writer, schemes []theme.Scheme) error {
	for _, s := range schemes {
		if _, err := fmt.Fprintln(w, s.Name); err != nil {
			return err
		}
	}
	return nil
}
