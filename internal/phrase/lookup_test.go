package phrase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lookupPhrases() []Phrase {
	return []Phrase{
		{ID: "abc123", Text: "¡Ánimo! Cada línea te acerca a la meta."},
		{ID: "def456", Text: "Ese bug se arregla con una buena mateada."},
		{ID: "ghi789", Text: "No hay error que aguante un buen refactor."},
	}
}

func TestLookupByID(t *testing.T) {
	phrases := lookupPhrases()

	t.Run("found", func(t *testing.T) {
		result := LookupByID(phrases, "def456")
		assert.NotNil(t, result)
		assert.Equal(t, "Ese bug se arregla con una buena mateada.", result.Text)
	})

	t.Run("not found", func(t *testing.T) {
		result := LookupByID(phrases, "notexist")
		assert.Nil(t, result)
	})

	t.Run("empty slice", func(t *testing.T) {
		result := LookupByID(nil, "abc123")
		assert.Nil(t, result)
	})
}

func TestLookupByIndex(t *testing.T) {
	phrases := lookupPhrases()

	tests := []struct {
		name   string
		index  int
		wantID string
	}{
		{"first", 1, "abc123"},
		{"last", 3, "ghi789"},
		{"zero", 0, ""},
		{"negative", -1, ""},
		{"out of range", 4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := LookupByIndex(phrases, tt.index)
			if tt.wantID == "" {
				assert.Nil(t, result)
				return
			}
			if assert.NotNil(t, result) {
				assert.Equal(t, tt.wantID, result.ID)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	phrases := lookupPhrases()

	assert.Len(t, Search(phrases, ""), 3)
	assert.Len(t, Search(phrases, "BUG"), 1)
	assert.Len(t, Search(phrases, "ánimo"), 1)
	assert.Len(t, Search(phrases, "ÁNIMO"), 1)
	assert.Empty(t, Search(phrases, "deploy"))
}
