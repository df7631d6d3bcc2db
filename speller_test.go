package jpoetry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpoetry/jpoetry/morph"
)

func lexicon(t *testing.T) *morph.Lexicon {
	t.Helper()
	lex, err := morph.Default()
	require.NoError(t, err)
	return lex
}

// brokenMorphology fails every query.
type brokenMorphology struct{}

var errBroken = errors.New("analyser is down")

func (brokenMorphology) Parse(string) (morph.Analysis, error) { return morph.Analysis{}, errBroken }
func (brokenMorphology) Inflect(morph.Analysis, morph.Case) (string, error) {
	return "", errBroken
}
func (brokenMorphology) Lexeme(morph.Analysis) ([]string, error)     { return nil, errBroken }
func (brokenMorphology) AgreeWithNumber(string, int) (string, error) { return "", errBroken }

func TestSpell(t *testing.T) {
	s := NewSpeller(lexicon(t))
	tests := []struct {
		token string
		want  string
	}{
		{"1", "один"},
		{"1-я", "первая"},
		{"1-й", "первый"},
		{"1-ая", "первая"},
		{"2-й", "второй"},
		{"3-я", "третья"},
		{"56", "пятьдесят шесть"},
		{"56-й", "пятьдесят шестой"},
		{"5-ти", "пяти"},
		{"2-х", "двух"},
		{"90-х", "девяностых"},
		{"5-х", "пятых"},
		{"1990-х", "тысяча девятьсот девяностых"},
		{"3.5", "три и пять"},
		{"3.5-й", "три и пятый"},
		{"1 000", "тысяча"},
		{"1 000-й", "тысячный"},
		{"5000-й", "пятитысячный"},
		{"100 000", "сто тысяч"},
		{"100 000-й", "стотысячный"},
		{"1 000 000", "миллион"},
		{"10 000 000-й", "десятимиллионный"},
		{"1000000000-й", "миллиардный"},
		{"10 456 269-й", "десять миллионов четыреста пятьдесят шесть тысяч двести шестьдесят девятый"},
		{"10/10", "десять из десяти"},
		{"1/1000", "один из тысячи"},
		{"1/10000", "один из десяти тысяч"},
		{"1/100 000", "один из ста тысяч"},
		{"1:1", "один к одному"},
		{"10:10", "десять к десяти"},
		{"1:1000", "один к тысяче"},
		{"1:10000", "один к десяти тысячам"},
		{"1:100 000", "один к ста тысячам"},
		{"1:1 100 000", "один к миллиону ста тысячам"},
	}
	for _, tt := range tests {
		got, err := s.Spell(tt.token, "")
		if assert.NoError(t, err, "Spell(%q)", tt.token) {
			assert.Equal(t, tt.want, got, "Spell(%q)", tt.token)
		}
	}
}

func TestSpellCase(t *testing.T) {
	s := NewSpeller(lexicon(t))
	tests := []struct {
		token string
		c     morph.Case
		want  string
	}{
		{"10", morph.Genitive, "десяти"},
		{"100", morph.Genitive, "ста"},
		{"1000", morph.Dative, "тысяче"},
		{"2", morph.Instrumental, "двумя"},
		{"300", morph.Dative, "трёмстам"},
	}
	for _, tt := range tests {
		got, err := s.Spell(tt.token, tt.c)
		if assert.NoError(t, err, "Spell(%q, %s)", tt.token, tt.c) {
			assert.Equal(t, tt.want, got, "Spell(%q, %s)", tt.token, tt.c)
		}
	}
}

func TestSpellBadNumber(t *testing.T) {
	s := NewSpeller(lexicon(t))
	for _, token := range []string{"", "abc", "-й", "1-2", "1a2", "5-ъ", "100000000001", "99999999999999999999", "1/", "1:x"} {
		_, err := s.Spell(token, "")
		assert.ErrorIs(t, err, ErrBadNumber, "Spell(%q)", token)
	}
}

func TestSpellMaximum(t *testing.T) {
	got, err := NewSpeller(lexicon(t)).Spell("100 000 000 000", "")
	require.NoError(t, err)
	assert.Equal(t, "сто миллиардов", got)
}

func TestSpellParseError(t *testing.T) {
	s := NewSpeller(brokenMorphology{})

	got, err := s.Spell("42", "")
	require.NoError(t, err)
	assert.Equal(t, "сорок два", got)

	_, err = s.Spell("1/5", "")
	assert.ErrorIs(t, err, ErrParse)
	assert.ErrorIs(t, err, errBroken)

	_, err = s.Spell("5-й", "")
	assert.ErrorIs(t, err, ErrParse)
}

func TestScanNumeral(t *testing.T) {
	tests := []struct {
		in   string
		want numeralToken
	}{
		{"56", numeralToken{digits: "56"}},
		{"56-й", numeralToken{digits: "56", ending: "й"}},
		{"56ой", numeralToken{digits: "56", ending: "ой"}},
		{"3.5", numeralToken{digits: "3", sep: '.', rest: "5"}},
		{"1/1000", numeralToken{digits: "1", sep: '/', rest: "1000"}},
		{"1:1:1", numeralToken{digits: "1", sep: ':', rest: "1:1"}},
	}
	for _, tt := range tests {
		got, err := scanNumeral(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
