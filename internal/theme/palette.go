package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the terminal rendition of an applied scheme.
type Palette struct {
	Background  Gradient
	Primary     lipgloss.Color
	PrimaryDark lipgloss.Color
	Border      lipgloss.Color
	Focus       lipgloss.Color
	Shadow      lipgloss.Color
	OnPrimary   lipgloss.Color // Readable text color on Primary/PrimaryDark
	Text        lipgloss.Color // Readable text color on the background
}

// NewPalette converts an applied background and property set into terminal
// colors. Translucent properties are composited over the first background
// stop. Unparseable or missing values fall back to the first bundled scheme.
func NewPalette(background string, props map[string]string) Palette {
	fallback := bundledSchemes[0]

	bg, err := ParseGradient(background)
	if err != nil || len(bg.Stops) == 0 {
		bg, _ = ParseGradient(fallback.Gradient)
	}
	base := bg.First()

	get := func(name, def string) colorful.Color {
		if v, ok := props[name]; ok {
			if c, err := ParseColor(v, base); err == nil {
				return c
			}
		}
		c, _ := ParseColor(def, base)
		return c
	}

	primary := get(PropPrimary, fallback.Primary)
	primaryDark := get(PropPrimaryDark, fallback.PrimaryDark)

	return Palette{
		Background:  bg,
		Primary:     toLipgloss(primary),
		PrimaryDark: toLipgloss(primaryDark),
		Border:      toLipgloss(get(PropPrimaryBorder, fallback.Border)),
		Focus:       toLipgloss(get(PropPrimaryFocus, fallback.Focus)),
		Shadow:      toLipgloss(get(PropPrimaryShadow, fallback.Shadow)),
		OnPrimary:   toLipgloss(contrastText(primary)),
		Text:        toLipgloss(contrastText(base)),
	}
}

// DefaultPalette is the palette shown before any scheme has been applied.
func DefaultPalette() Palette {
	s := bundledSchemes[0]
	props := make(map[string]string, 5)
	for _, p := range s.Properties() {
		props[p.Name] = p.Value
	}
	return NewPalette(s.Gradient, props)
}

// BandColors returns n lipgloss colors sampled across the background.
func (p Palette) BandColors(n int) []lipgloss.Color {
	colors := p.Background.Colors(n)
	result := make([]lipgloss.Color, len(colors))
	for i, c := range colors {
		result[i] = toLipgloss(c)
	}
	return result
}

func toLipgloss(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Clamped().Hex())
}

// contrastText picks near-black or white text depending on lightness.
func contrastText(c colorful.Color) colorful.Color {
	l, _, _ := c.Lab()
	if l > 0.6 {
		return colorful.Color{R: 0.1, G: 0.1, B: 0.12}
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}
