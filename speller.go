package jpoetry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jpoetry/jpoetry/morph"
	"github.com/jpoetry/jpoetry/numeral"
)

// ordinals maps cardinal words to their ordinal counterparts. Larger
// scales follow the "<cardinal>ный" rule.
var ordinals = map[string]string{
	"один":         "первый",
	"два":          "второй",
	"три":          "третий",
	"четыре":       "четвёртый",
	"пять":         "пятый",
	"шесть":        "шестой",
	"семь":         "седьмой",
	"восемь":       "восьмой",
	"девять":       "девятый",
	"десять":       "десятый",
	"одиннадцать":  "одиннадцатый",
	"двенадцать":   "двенадцатый",
	"тринадцать":   "тринадцатый",
	"четырнадцать": "четырнадцатый",
	"пятнадцать":   "пятнадцатый",
	"шестнадцать":  "шестнадцатый",
	"семнадцать":   "семнадцатый",
	"восемнадцать": "восемнадцатый",
	"девятнадцать": "девятнадцатый",
	"двадцать":     "двадцатый",
	"тридцать":     "тридцатый",
	"сорок":        "сороковой",
	"пятьдесят":    "пятидесятый",
	"шестьдесят":   "шестидесятый",
	"семьдесят":    "семидесятый",
	"восемьдесят":  "восьмидесятый",
	"девяносто":    "девяностый",
	"сто":          "сотый",
	"двести":       "двухсотый",
	"триста":       "трёхсотый",
	"четыреста":    "четырёхсотый",
	"пятьсот":      "пятисотый",
	"шестьсот":     "шестисотый",
	"семьсот":      "семисотый",
	"восемьсот":    "восьмисотый",
	"девятьсот":    "девятисотый",
	"тысяча":       "тысячный",
	"миллион":      "миллионный",
}

// numeralToken is one level of the numeral grammar:
//
//	numeral := digits [ "." numeral | "/" numeral | ":" numeral | ["-"] suffix ]
type numeralToken struct {
	digits string
	ending string
	sep    rune
	rest   string
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// scanNumeral splits s into its leading digits and whatever follows them.
func scanNumeral(s string) (numeralToken, error) {
	var tok numeralToken
	for i, r := range s {
		switch {
		case isDigit(r):
			continue
		case r == '.' || r == '/' || r == ':':
			tok.digits, tok.sep, tok.rest = s[:i], r, s[i+1:]
			return tok, nil
		case strings.IndexFunc(s[i:], isDigit) >= 0:
			return tok, fmt.Errorf("%w: digits after suffix in %q", ErrBadNumber, s)
		default:
			tok.digits = s[:i]
			tok.ending = strings.TrimPrefix(s[i:], "-")
			return tok, nil
		}
	}
	tok.digits = s
	return tok, nil
}

// Speller turns numeral tokens into Russian words.
type Speller struct {
	morph Morphology
}

// NewSpeller returns a speller backed by m.
func NewSpeller(m Morphology) *Speller {
	return &Speller{morph: m}
}

// Spell converts token to words. A non-empty case inflects every word:
// Spell("1/1000", "") is "один из тысячи", Spell("10", morph.Genitive) is
// "десяти". A suffix in the token selects the matching form: Spell("56-й",
// "") is "пятьдесят шестой".
func (s *Speller) Spell(token string, c morph.Case) (string, error) {
	token = strings.Join(strings.Fields(token), "")
	tok, err := scanNumeral(token)
	if err != nil {
		return "", err
	}

	var tail string
	switch tok.sep {
	case '.':
		tail, err = s.Spell(tok.rest, "")
		tail = " и " + tail
	case '/':
		tail, err = s.Spell(tok.rest, morph.Genitive)
		tail = " из " + tail
	case ':':
		tail, err = s.Spell(tok.rest, morph.Dative)
		tail = " к " + tail
	}
	if err != nil {
		return "", err
	}

	if tok.digits == "" {
		return "", fmt.Errorf("%w: no digits in %q", ErrBadNumber, token)
	}
	value, err := strconv.ParseInt(tok.digits, 10, 64)
	if err != nil || value > numeral.Max {
		return "", fmt.Errorf("%w: %q is too big", ErrBadNumber, tok.digits)
	}
	cardinal, err := numeral.Cardinal(value)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBadNumber, err)
	}
	words := strings.Fields(cardinal)
	if len(words) > 1 && (words[0] == "один" || words[0] == "одна") {
		words = words[1:]
	}

	if c != "" {
		for i, w := range words {
			if words[i], err = s.inflect(w, c); err != nil {
				return "", err
			}
		}
		return strings.Join(words, " ") + tail, nil
	}
	if tok.ending == "" {
		return strings.Join(words, " ") + tail, nil
	}

	last := len(words) - 1
	ordinal := false
	if a, err := s.morph.Parse(tok.digits + "-" + tok.ending); err == nil {
		ordinal = a.Tag.Has("Anum")
	}
	form, err := s.formEndingWith(words[last], tok.ending, ordinal)
	if errors.Is(err, ErrBadNumber) && !ordinal {
		// "90-х" has no cardinal reading: "девяностых".
		form, err = s.formEndingWith(words[last], tok.ending, true)
	}
	if err != nil {
		return "", err
	}
	words[last] = form

	if ordinal && value%10 == 0 && len(words) > 1 {
		var b strings.Builder
		for _, w := range words[:last] {
			// "сто" keeps its form in compounds: "стотысячный".
			if w != "сто" {
				if w, err = s.inflect(w, morph.Genitive); err != nil {
					return "", err
				}
			}
			b.WriteString(w)
		}
		return b.String() + words[last] + tail, nil
	}
	return strings.Join(words, " ") + tail, nil
}

// formEndingWith finds the form of a cardinal word, or of its ordinal
// counterpart, that ends with ending.
func (s *Speller) formEndingWith(word, ending string, ordinal bool) (string, error) {
	forms, err := s.lexeme(word, ordinal)
	if err != nil {
		return "", err
	}
	for _, form := range forms {
		if strings.HasSuffix(form, ending) {
			return form, nil
		}
	}
	return "", fmt.Errorf("%w: no form of %q ends with %q", ErrBadNumber, word, ending)
}

func (s *Speller) inflect(word string, c morph.Case) (string, error) {
	if word == "сто" && (c == morph.Genitive || c == morph.Dative) {
		return "ста", nil
	}
	a, err := s.morph.Parse(word)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrParse, err)
	}
	inflected, err := s.morph.Inflect(a, c)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrParse, err)
	}
	return inflected, nil
}

// lexeme returns the forms of a cardinal word, or of its ordinal
// counterpart when ordinal is set.
func (s *Speller) lexeme(word string, ordinal bool) ([]string, error) {
	a, err := s.morph.Parse(word)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if ordinal {
		if a, err = s.ordinal(a.Normal); err != nil {
			return nil, err
		}
	}
	forms, err := s.morph.Lexeme(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return forms, nil
}

func (s *Speller) ordinal(cardinal string) (morph.Analysis, error) {
	if word, ok := ordinals[cardinal]; ok {
		a, err := s.morph.Parse(word)
		if err != nil {
			return a, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return a, nil
	}
	a, err := s.morph.Parse(cardinal + "ный")
	if err != nil || !a.Tag.Has("Anum") {
		return a, fmt.Errorf("%w: no ordinal for %q", ErrBadNumber, cardinal)
	}
	return a, nil
}
