package phrase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_SeedsDefaults(t *testing.T) {
	s := NewStore()

	require.Equal(t, 5, s.Count())
	assert.Equal(t, DefaultPhrases, s.Texts())

	for _, p := range s.All() {
		assert.True(t, p.Default)
		assert.NotEmpty(t, p.ID)
		assert.False(t, p.AddedAt.IsZero())
	}
}

func TestNewStore_IndependentCopies(t *testing.T) {
	a := NewStore()
	b := NewStore()

	_, err := a.Add("Un paso a la vez.")
	require.NoError(t, err)

	assert.Equal(t, 6, a.Count())
	assert.Equal(t, 5, b.Count())
	assert.Len(t, DefaultPhrases, 5)
}

func TestStore_Add(t *testing.T) {
	s := NewStore()

	p, err := s.Add("  Un paso a la vez.  ")
	require.NoError(t, err)
	assert.Equal(t, "Un paso a la vez.", p.Text)
	assert.False(t, p.Default)
	assert.Equal(t, 6, s.Count())

	// Appended at the end, insertion order kept
	assert.Equal(t, "Un paso a la vez.", s.At(5).Text)
	assert.Equal(t, DefaultPhrases[0], s.At(0).Text)
}

func TestStore_AddRejectsEmpty(t *testing.T) {
	s := NewStore()

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"spaces", "     "},
		{"tabs_newlines", "\t\n \r\n"},
		{"unicode_space", "\u00a0\u3000"},
		{"byte_order_mark", "\ufeff"},
		{"bom_and_spaces", "\ufeff \u00a0\ufeff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Add(tt.input)
			assert.ErrorIs(t, err, ErrEmptyPhrase)
			assert.Equal(t, 5, s.Count())
		})
	}
}

func TestStore_AddRejectsDuplicates(t *testing.T) {
	s := NewStore()

	tests := []struct {
		name  string
		input string
	}{
		{"exact", "Ese bug se arregla con una buena mateada."},
		{"upper", "ESE BUG SE ARREGLA CON UNA BUENA MATEADA."},
		{"mixed_with_spaces", "  ese Bug se Arregla con una buena MATEADA.  "},
		{"accent_upper", "¡ÁNIMO! CADA LÍNEA TE ACERCA A LA META."},
		{"decomposed_accent", "¡A\u0301nimo! Cada li\u0301nea te acerca a la meta."},
		{"leading_bom", "\ufeffEse bug se arregla con una buena mateada."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Add(tt.input)
			assert.ErrorIs(t, err, ErrDuplicatePhrase)
			assert.Equal(t, 5, s.Count())
		})
	}
}

func TestStore_Contains(t *testing.T) {
	s := NewStore()

	assert.True(t, s.Contains("hoy el deploy sale sin drama, vas a ver."))
	assert.False(t, s.Contains("Mañana también."))
}

func TestStore_IndexOf(t *testing.T) {
	s := NewStore()

	assert.Equal(t, 2, s.IndexOf(DefaultPhrases[2]))
	assert.Equal(t, -1, s.IndexOf("RESPIRA, CUENTA HASTA DIEZ Y VUELVE AL CÓDIGO."), "exact text only")
	assert.Equal(t, -1, s.IndexOf("nope"))
}

func TestStore_AllReturnsCopy(t *testing.T) {
	s := NewStore()

	all := s.All()
	all[0].Text = "changed"

	assert.Equal(t, DefaultPhrases[0], s.At(0).Text)
}

func TestNewPhrase(t *testing.T) {
	p, err := NewPhrase("  hola  ")
	require.NoError(t, err)
	assert.Equal(t, "hola", p.Text)
	assert.Len(t, p.ID, 26)

	_, err = NewPhrase("   ")
	assert.ErrorIs(t, err, ErrEmptyPhrase)
}

func TestFoldKey(t *testing.T) {
	assert.Equal(t, FoldKey("Código"), FoldKey("CÓDIGO"))
	assert.Equal(t, FoldKey("Código"), FoldKey("Co\u0301digo"))
	assert.NotEqual(t, FoldKey("codigo"), FoldKey("código"))
}

func TestStore_FullCaseFolding(t *testing.T) {
	s := NewEmptyStore()
	_, err := s.Add("Straße")
	require.NoError(t, err)

	// Full folding maps ß to ss, so these collide where a lowercase compare would not
	_, err = s.Add("STRASSE")
	assert.ErrorIs(t, err, ErrDuplicatePhrase)
	_, err = s.Add("strasse")
	assert.ErrorIs(t, err, ErrDuplicatePhrase)
	assert.Equal(t, 1, s.Count())

	// Final and medial sigma fold together too
	_, err = s.Add("ΌΣΟΣ")
	require.NoError(t, err)
	_, err = s.Add("όσος")
	assert.ErrorIs(t, err, ErrDuplicatePhrase)
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "hola", "hola"},
		{"ascii_space", "  hola \t\n", "hola"},
		{"nbsp", "\u00a0hola\u3000", "hola"},
		{"byte_order_mark", "\ufeffhola\ufeff", "hola"},
		{"inner_kept", " a \ufeff b ", "a \ufeff b"},
		{"only_bom", "\ufeff", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Trim(tt.input))
		})
	}
}

func TestStore_AddTrimsByteOrderMark(t *testing.T) {
	s := NewStore()

	p, err := s.Add("\ufeffUn paso a la vez.\ufeff")
	require.NoError(t, err)
	assert.Equal(t, "Un paso a la vez.", p.Text)
}
