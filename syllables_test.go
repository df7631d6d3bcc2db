package jpoetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	c := NewCounter(NewSpeller(lexicon(t)))
	tests := []struct {
		token string
		want  int
	}{
		{"sponge", 1},
		{"available", 4},
		{"PS4", 5},
		{"PS5", 3},
		{"в", 0},
		{"d", 1},
		{"the", 1},
		{"ape", 1},
		{"die", 1},
		{"announcement", 3},
		{"pronounceable", 4},
		{"columbia", 4},
		{"course", 1},
		{"bounce", 1},
		{"announced", 3},
		{"renouncements", 3},
		{"mispronounced", 4},
		{"молоко", 3},
		{"яяяяяя", 6},
		{"Ааа", 3},
		{"ы", 1},
		{"FFF", 3},
		// Abbreviations count letters only.
		{"ps-", 2},
		{"tv", 2},
		{"???", 0},
		{"", 0},
		{"1", 2},
		{"100 000", 3},
		{"1-ая", 3},
		{"10 000 000-й", 7},
		{"в 90-х", 4},
		{"10 456 269-й раз", 25},
	}
	for _, tt := range tests {
		got, err := c.Count(tt.token)
		if assert.NoError(t, err, "Count(%q)", tt.token) {
			assert.Equal(t, tt.want, got, "Count(%q)", tt.token)
		}
	}
}

func TestCountDeterministic(t *testing.T) {
	c := NewCounter(NewSpeller(lexicon(t)))
	for _, token := range []string{"банка", "1:1 100 000", "hello", "56-й"} {
		first, err := c.Count(token)
		require.NoError(t, err)
		second, err := c.Count(token)
		require.NoError(t, err)
		assert.Equal(t, first, second, token)
		assert.GreaterOrEqual(t, first, 0, token)
	}
}

func TestCountBadNumber(t *testing.T) {
	c := NewCounter(NewSpeller(lexicon(t)))
	_, err := c.Count("12abc3")
	assert.ErrorIs(t, err, ErrBadNumber)
}

func TestAnnotate(t *testing.T) {
	c := NewCounter(NewSpeller(lexicon(t)))
	infos, total, err := c.Annotate([]string{"Я", "вспомнил", "видос,"})
	require.NoError(t, err)
	assert.Equal(t, []WordInfo{{"Я", 1}, {"вспомнил", 2}, {"видос,", 2}}, infos)
	assert.Equal(t, 5, total)

	_, _, err = c.Annotate([]string{"ok", "1a2"})
	assert.ErrorIs(t, err, ErrBadNumber)
}

func TestWordInfoDescribe(t *testing.T) {
	assert.Equal(t, "вспомнил²", WordInfo{"вспомнил", 2}.Describe())
	assert.Equal(t, "раз²⁵", WordInfo{"раз", 25}.Describe())
	assert.Equal(t, "я¹ видос² (³)", LineInfo{Words: []WordInfo{{"я", 1}, {"видос", 2}}, Syllables: 3}.Describe())
}
