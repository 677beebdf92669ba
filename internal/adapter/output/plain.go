package output

import (
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/animo/internal/phrase"
	"github.com/jmylchreest/animo/internal/theme"
)

// PlainFormatter formats listings as plain text.
type PlainFormatter struct {
	opts     FormatterOptions
	template *template.Template
}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	f := &PlainFormatter{opts: opts}

	// Parse custom template if provided
	if opts.Template != "" {
		tmpl, err := template.New("plain").Funcs(templateFuncs()).Parse(opts.Template)
		if err == nil {
			f.template = tmpl
		}
	}

	return f
}

// templateData provides data for custom templates.
type templateData struct {
	Index        int
	Phrase       *phrase.Phrase
	RelativeTime string
}

// templateFuncs returns template helper functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"truncate": func(s string, maxLen int) string {
			r := []rune(s)
			if maxLen <= 0 || len(r) <= maxLen {
				return s
			}
			if maxLen <= 3 {
				return string(r[:maxLen])
			}
			return string(r[:maxLen-3]) + "..."
		},
		"reltime": relativeTime,
		"upper":   strings.ToUpper,
	}
}

// relativeTime formats t as "3 minutes ago".
func relativeTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return humanize.Time(t)
}

// FormatPhrases writes phrases one per line.
func (f *PlainFormatter) FormatPhrases(w io.Writer, phrases []phrase.Phrase) error {
	for i := range phrases {
		if err := f.formatPhrase(w, i+1, &phrases[i]); err != nil {
			return err
		}
	}
	return nil
}

func (f *PlainFormatter) formatPhrase(w io.Writer, index int, p *phrase.Phrase) error {
	if f.template != nil {
		data := templateData{
			Index:        index,
			Phrase:       p,
			RelativeTime: relativeTime(p.AddedAt),
		}
		if err := f.template.Execute(w, data); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}

	var sb strings.Builder
	if f.opts.ShowIndex {
		sb.WriteString(fmt.Sprintf("[%d] ", index))
	}
	sb.WriteString(p.Text)
	if f.opts.ShowAge {
		sb.WriteString(fmt.Sprintf(" (%s)", relativeTime(p.AddedAt)))
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatSchemes writes one scheme per line followed by its values.
func (f *PlainFormatter) FormatSchemes(w io.Writer, schemes []theme.Scheme) error {
	for i, s := range schemes {
		var sb strings.Builder
		if f.opts.ShowIndex {
			sb.WriteString(fmt.Sprintf("[%d] ", i+1))
		}
		sb.WriteString(s.Name)
		if f.opts.Swatches {
			sb.WriteString(" " + swatches(s))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    background: %s\n", s.Gradient))
		for _, p := range s.Properties() {
			sb.WriteString(fmt.Sprintf("    %s: %s\n", p.Name, p.Value))
		}

		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// swatches renders a colored block per scheme color.
func swatches(s theme.Scheme) string {
	props := make(map[string]string, 5)
	for _, p := range s.Properties() {
		props[p.Name] = p.Value
	}
	palette := theme.NewPalette(s.Gradient, props)

	var sb strings.Builder
	for _, c := range palette.BandColors(2) {
		sb.WriteString(lipgloss.NewStyle().Foreground(c).Render("██"))
	}
	for _, c := range []lipgloss.Color{palette.Primary, palette.PrimaryDark, palette.Border, palette.Focus, palette.Shadow} {
		sb.WriteString(lipgloss.NewStyle().Foreground(c).Render("██"))
	}
	return sb.String()
}
