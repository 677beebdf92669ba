package theme

import (
	"math/rand/v2"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRoot captures everything written to it.
type recordingRoot struct {
	background  string
	props       map[string]string
	backgrounds int
}

func newRecordingRoot() *recordingRoot {
	return &recordingRoot{props: make(map[string]string)}
}

func (r *recordingRoot) SetBackground(value string) {
	r.background = value
	r.backgrounds++
}

func (r *recordingRoot) SetProperty(name, value string) {
	r.props[name] = value
}

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(11, 13))
}

func TestDefaultSchemes(t *testing.T) {
	schemes := DefaultSchemes()
	require.Len(t, schemes, 5)

	names := make(map[string]bool)
	for _, s := range schemes {
		names[s.Name] = true
		assert.NotEmpty(t, s.Gradient)
		assert.NotEmpty(t, s.Primary)
		assert.NotEmpty(t, s.PrimaryDark)
		assert.NotEmpty(t, s.Border)
		assert.NotEmpty(t, s.Focus)
		assert.NotEmpty(t, s.Shadow)

		_, err := ParseGradient(s.Gradient)
		assert.NoError(t, err, s.Name)
		for _, p := range s.Properties() {
			_, err := ParseColor(p.Value, colorful.Color{R: 1, G: 1, B: 1})
			assert.NoError(t, err, "%s %s", s.Name, p.Name)
		}
	}
	assert.Len(t, names, 5)

	// Callers get a copy
	schemes[0].Primary = "#000000"
	assert.Equal(t, "#2d4bff", DefaultSchemes()[0].Primary)
}

func TestScheme_Apply(t *testing.T) {
	root := newRecordingRoot()
	s := DefaultSchemes()[1]

	s.Apply(root)

	assert.Equal(t, s.Gradient, root.background)
	assert.Equal(t, map[string]string{
		"--primary":        "#f97316",
		"--primary-dark":   "#ea580c",
		"--primary-border": "rgba(249, 115, 22, 0.25)",
		"--primary-focus":  "rgba(249, 115, 22, 0.18)",
		"--primary-shadow": "rgba(249, 115, 22, 0.12)",
	}, root.props)
}

func TestSelector_NeverRepeatsConsecutively(t *testing.T) {
	sel := NewSelector(DefaultSchemes(), seeded())
	root := newRecordingRoot()

	prev := sel.Last()
	assert.Equal(t, -1, prev)

	for i := 0; i < 1000; i++ {
		scheme, ok := sel.ApplyRandom(root)
		require.True(t, ok)
		assert.NotEqual(t, prev, sel.Last(), "iteration %d", i)
		assert.Equal(t, scheme.Gradient, root.background)
		prev = sel.Last()
	}
	assert.Equal(t, 1000, root.backgrounds)
}

func TestSelector_UsesEveryScheme(t *testing.T) {
	sel := NewSelector(DefaultSchemes(), seeded())
	root := newRecordingRoot()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		s, _ := sel.ApplyRandom(root)
		seen[s.Name] = true
	}
	assert.Len(t, seen, 5)
}

func TestSelector_SingleScheme(t *testing.T) {
	only := DefaultSchemes()[2]
	sel := NewSelector([]Scheme{only}, seeded())
	root := newRecordingRoot()

	for i := 0; i < 5; i++ {
		s, ok := sel.ApplyRandom(root)
		require.True(t, ok)
		assert.Equal(t, only.Name, s.Name)
		assert.Equal(t, 0, sel.Last())
	}
}

func TestSelector_NoSchemes(t *testing.T) {
	sel := NewSelector(nil, seeded())
	root := newRecordingRoot()

	_, ok := sel.ApplyRandom(root)
	assert.False(t, ok)
	assert.Equal(t, 0, root.backgrounds)
	assert.Empty(t, root.props)
	assert.Equal(t, -1, sel.Last())
}

func TestParseColor(t *testing.T) {
	white := colorful.Color{R: 1, G: 1, B: 1}

	tests := []struct {
		name    string
		input   string
		wantHex string
		wantErr bool
	}{
		{"hex6", "#2d4bff", "#2d4bff", false},
		{"hex6_upper", "#2D4BFF", "#2d4bff", false},
		{"hex3", "#fff", "#ffffff", false},
		{"rgb", "rgb(255, 0, 0)", "#ff0000", false},
		{"rgba_opaque", "rgba(0, 0, 255, 1)", "#0000ff", false},
		{"rgba_transparent", "rgba(0, 0, 0, 0)", "#ffffff", false},
		{"rgba_half", "rgba(0, 0, 0, 0.5)", "#808080", false},
		{"named", "red", "", true},
		{"bad_hex", "#zzzzzz", "", true},
		{"bad_alpha", "rgba(0, 0, 0, 2)", "", true},
		{"bad_channel", "rgb(300, 0, 0)", "", true},
		{"missing_paren", "rgb(1, 2, 3", "", true},
		{"wrong_arity", "rgb(1, 2)", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseColor(tt.input, white)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHex, c.Hex())
		})
	}
}

func TestParseGradient(t *testing.T) {
	g, err := ParseGradient("linear-gradient(160deg, #e7ecff 0%, #f2f5ff 100%)")
	require.NoError(t, err)

	assert.Equal(t, 160.0, g.Angle)
	require.Len(t, g.Stops, 2)
	assert.Equal(t, "#e7ecff", g.Stops[0].Color.Hex())
	assert.Equal(t, 0.0, g.Stops[0].Position)
	assert.Equal(t, "#f2f5ff", g.Stops[1].Color.Hex())
	assert.Equal(t, 1.0, g.Stops[1].Position)

	assert.Equal(t, "#e7ecff", g.At(0).Hex())
	assert.Equal(t, "#f2f5ff", g.At(1).Hex())
	assert.Equal(t, "#e7ecff", g.First().Hex())
}

func TestParseGradient_RgbaStopsAndImplicitPositions(t *testing.T) {
	g, err := ParseGradient("linear-gradient(90deg, rgba(255, 0, 0, 1), #00ff00, #0000ff)")
	require.NoError(t, err)

	require.Len(t, g.Stops, 3)
	assert.Equal(t, "#ff0000", g.Stops[0].Color.Hex())
	assert.Equal(t, 0.0, g.Stops[0].Position)
	assert.Equal(t, 0.5, g.Stops[1].Position)
	assert.Equal(t, 1.0, g.Stops[2].Position)
}

func TestParseGradient_PlainColor(t *testing.T) {
	g, err := ParseGradient("#123456")
	require.NoError(t, err)
	require.Len(t, g.Stops, 1)
	assert.Equal(t, "#123456", g.At(0.7).Hex())
}

func TestParseGradient_Errors(t *testing.T) {
	for _, input := range []string{
		"linear-gradient(160deg, #e7ecff 0%",
		"linear-gradient(160deg)",
		"linear-gradient(abcdeg, #fff)",
		"linear-gradient(#fff x%)",
		"nonsense",
	} {
		_, err := ParseGradient(input)
		assert.ErrorIs(t, err, ErrInvalidColor, input)
	}
}

func TestGradient_Colors(t *testing.T) {
	g, err := ParseGradient("linear-gradient(160deg, #000000 0%, #ffffff 100%)")
	require.NoError(t, err)

	colors := g.Colors(5)
	require.Len(t, colors, 5)
	assert.Equal(t, "#000000", colors[0].Hex())
	assert.Equal(t, "#ffffff", colors[4].Hex())

	assert.Len(t, g.Colors(1), 1)
	assert.Nil(t, g.Colors(0))
}

func TestNewPalette(t *testing.T) {
	s := DefaultSchemes()[2]
	root := newRecordingRoot()
	s.Apply(root)

	p := NewPalette(root.background, root.props)

	assert.Equal(t, "#0f9d58", string(p.Primary))
	assert.Equal(t, "#0b7d46", string(p.PrimaryDark))
	assert.Len(t, p.Background.Stops, 2)
	// Light gradient background -> dark text
	assert.Equal(t, "#1a1a1f", string(p.Text))
	assert.Len(t, p.BandColors(8), 8)
}

func TestNewPalette_FallsBackOnBadValues(t *testing.T) {
	p := NewPalette("garbage", map[string]string{PropPrimary: "not-a-color"})

	assert.Equal(t, "#2d4bff", string(p.Primary))
	assert.Equal(t, "#e7ecff", p.Background.First().Hex())

	def := DefaultPalette()
	assert.Equal(t, "#2d4bff", string(def.Primary))
	assert.Equal(t, "#ffffff", string(def.OnPrimary))
}
