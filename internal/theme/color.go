package theme

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for color values that cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// ParseColor parses a CSS color value: #rgb, #rrggbb, rgb(r, g, b) or
// rgba(r, g, b, a). Translucent colors are composited over the given color,
// since terminal cells have no alpha channel.
func ParseColor(value string, over colorful.Color) (colorful.Color, error) {
	v := strings.ToLower(strings.TrimSpace(value))

	switch {
	case strings.HasPrefix(v, "#"):
		c, err := colorful.Hex(v)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, value, err)
		}
		return c, nil

	case strings.HasPrefix(v, "rgba(") || strings.HasPrefix(v, "rgb("):
		open := strings.IndexByte(v, '(')
		if !strings.HasSuffix(v, ")") {
			return colorful.Color{}, fmt.Errorf("%w %q: missing closing parenthesis", ErrInvalidColor, value)
		}
		args := strings.Split(v[open+1:len(v)-1], ",")
		if len(args) != 3 && len(args) != 4 {
			return colorful.Color{}, fmt.Errorf("%w %q: expected 3 or 4 components", ErrInvalidColor, value)
		}

		var channels [3]float64
		for i := 0; i < 3; i++ {
			n, err := strconv.ParseFloat(strings.TrimSpace(args[i]), 64)
			if err != nil || n < 0 || n > 255 {
				return colorful.Color{}, fmt.Errorf("%w %q: bad channel %q", ErrInvalidColor, value, args[i])
			}
			channels[i] = n / 255
		}
		c := colorful.Color{R: channels[0], G: channels[1], B: channels[2]}

		alpha := 1.0
		if len(args) == 4 {
			a, err := strconv.ParseFloat(strings.TrimSpace(args[3]), 64)
			if err != nil || a < 0 || a > 1 {
				return colorful.Color{}, fmt.Errorf("%w %q: bad alpha %q", ErrInvalidColor, value, args[3])
			}
			alpha = a
		}
		return over.BlendRgb(c, alpha).Clamped(), nil
	}

	return colorful.Color{}, fmt.Errorf("%w %q", ErrInvalidColor, value)
}

// Stop is a gradient color stop. Position is in [0, 1].
type Stop struct {
	Color    colorful.Color
	Position float64
}

// Gradient is a parsed CSS linear-gradient.
// Angle is kept as declared; terminal bands are always sampled left to right.
type Gradient struct {
	Angle float64
	Stops []Stop
}

// ParseGradient parses linear-gradient(<angle>deg, <color> [<pos>%], ...).
// A plain color is accepted as a single-stop gradient. Stops without a
// position are spread evenly.
func ParseGradient(value string) (Gradient, error) {
	v := strings.TrimSpace(value)
	lower := strings.ToLower(v)

	const prefix = "linear-gradient("
	if !strings.HasPrefix(lower, prefix) {
		c, err := ParseColor(v, colorful.Color{R: 1, G: 1, B: 1})
		if err != nil {
			return Gradient{}, err
		}
		return Gradient{Stops: []Stop{{Color: c}}}, nil
	}
	if !strings.HasSuffix(lower, ")") {
		return Gradient{}, fmt.Errorf("%w %q: missing closing parenthesis", ErrInvalidColor, value)
	}

	args := splitTopLevel(lower[len(prefix) : len(lower)-1])
	var g Gradient

	if len(args) > 0 && strings.HasSuffix(args[0], "deg") {
		angle, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
		if err != nil {
			return Gradient{}, fmt.Errorf("%w %q: bad angle %q", ErrInvalidColor, value, args[0])
		}
		g.Angle = angle
		args = args[1:]
	}
	if len(args) == 0 {
		return Gradient{}, fmt.Errorf("%w %q: no color stops", ErrInvalidColor, value)
	}

	white := colorful.Color{R: 1, G: 1, B: 1}
	positioned := make([]bool, len(args))
	for i, arg := range args {
		colorPart, pos, hasPos, err := splitStop(arg)
		if err != nil {
			return Gradient{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, value, err)
		}
		c, err := ParseColor(colorPart, white)
		if err != nil {
			return Gradient{}, err
		}
		g.Stops = append(g.Stops, Stop{Color: c, Position: pos})
		positioned[i] = hasPos
	}

	for i := range g.Stops {
		if positioned[i] {
			continue
		}
		if len(g.Stops) == 1 {
			g.Stops[i].Position = 0
		} else {
			g.Stops[i].Position = float64(i) / float64(len(g.Stops)-1)
		}
	}

	return g, nil
}

// At returns the gradient color at t in [0, 1], blending in CIE-L*u*v*.
func (g Gradient) At(t float64) colorful.Color {
	if len(g.Stops) == 0 {
		return colorful.Color{}
	}
	if t <= g.Stops[0].Position {
		return g.Stops[0].Color
	}
	last := g.Stops[len(g.Stops)-1]
	if t >= last.Position {
		return last.Color
	}

	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t > b.Position {
			continue
		}
		span := b.Position - a.Position
		if span <= 0 {
			return b.Color
		}
		return a.Color.BlendLuv(b.Color, (t-a.Position)/span).Clamped()
	}
	return last.Color
}

// Colors samples n evenly spaced colors across the gradient.
func (g Gradient) Colors(n int) []colorful.Color {
	if n <= 0 {
		return nil
	}
	result := make([]colorful.Color, n)
	for i := range result {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		result[i] = g.At(t)
	}
	return result
}

// First returns the first stop color, or white for an empty gradient.
func (g Gradient) First() colorful.Color {
	if len(g.Stops) == 0 {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return g.Stops[0].Color
}

// splitTopLevel splits s on commas that are not inside parentheses.
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if tail := strings.TrimSpace(s[start:]); tail != "" {
		parts = append(parts, tail)
	}
	return parts
}

// splitStop splits "<color> <pos>%" into its color and position in [0, 1].
func splitStop(stop string) (string, float64, bool, error) {
	idx := strings.LastIndexByte(stop, ' ')
	if idx < 0 || idx < strings.LastIndexByte(stop, ')') {
		return stop, 0, false, nil
	}
	posPart := strings.TrimSpace(stop[idx+1:])
	if !strings.HasSuffix(posPart, "%") {
		return stop, 0, false, nil
	}
	pct, err := strconv.ParseFloat(strings.TrimSuffix(posPart, "%"), 64)
	if err != nil {
		return "", 0, false, fmt.Errorf("bad stop position %q", posPart)
	}
	return strings.TrimSpace(stop[:idx]), pct / 100, true, nil
}
