package jpoetry

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

func isCyrillicVowel(r rune) bool {
	return strings.ContainsRune("аеёиоуыэюя", r)
}

func isLatinVowel(r rune) bool {
	return strings.ContainsRune("aeiouy", r)
}

func isASCIILetter(r rune) bool {
	return r < unicode.MaxASCII && unicode.IsLetter(r)
}

// Counter counts syllables of single tokens. Digits are spelled out as
// Russian numerals and their words counted.
type Counter struct {
	speller *Speller
}

// NewCounter returns a counter spelling numerals with s.
func NewCounter(s *Speller) *Counter {
	return &Counter{speller: s}
}

// Count returns the number of syllables in token. Cyrillic vowels always
// count; Latin words get a handful of English spelling corrections.
func (c *Counter) Count(token string) (int, error) {
	word := []rune(strings.ToLower(norm.NFC.String(token)))
	last := len(word) - 1

	var (
		syllables, numberSyllables int
		letters                    int
		hasASCII                   bool
		number                     []rune
	)
	flush := func() error {
		spelled, err := c.speller.Spell(string(number), "")
		if err != nil {
			return err
		}
		n, err := c.Count(spelled)
		if err != nil {
			return err
		}
		numberSyllables += n
		number = number[:0]
		return nil
	}

	for i, r := range word {
		if isASCIILetter(r) {
			hasASCII = true
		}
		if isDigit(r) || len(number) > 0 && r != ' ' {
			number = append(number, r)
			continue
		}
		if len(number) > 0 {
			// "100 000" is a single number.
			if i < last && isDigit(word[i+1]) {
				continue
			}
			if err := flush(); err != nil {
				return 0, err
			}
			continue
		}

		if unicode.IsLetter(r) {
			letters++
		}
		switch {
		case isCyrillicVowel(r):
			syllables++
		case isLatinVowel(r):
			if i == 0 || i == last || !isLatinVowel(word[i+1]) {
				syllables++
			}
		}
	}
	if len(number) > 0 {
		if err := flush(); err != nil {
			return 0, err
		}
	}

	syllables += englishCorrection(word)
	if syllables < 0 {
		syllables = 0
	}
	// Abbreviations and single letters: one syllable per letter.
	if syllables == 0 && hasASCII {
		syllables = letters
	}
	return syllables + numberSyllables, nil
}

// englishCorrection adjusts a raw vowel count for silent and split
// vowels of English spelling.
func englishCorrection(word []rune) int {
	s := string(word)
	n := len(word)
	delta := 0
	if strings.HasSuffix(s, "e") && (n > 3 || isLatinVowel(word[0])) {
		delta--
	}
	if strings.HasSuffix(s, "ia") && n > 2 {
		delta++
	}
	if strings.HasSuffix(s, "le") && n > 2 && !isLatinVowel(word[n-3]) {
		delta++
	}
	if i := strings.Index(s, "ounce"); i >= 0 {
		after := []rune(s[i+len("ounce"):])
		if len(after) >= 2 && !isLatinVowel(after[0]) && isLatinVowel(after[1]) {
			delta--
		}
	}
	return delta
}

// Annotate counts syllables of every word and returns the total.
func (c *Counter) Annotate(words []string) ([]WordInfo, int, error) {
	infos := make([]WordInfo, 0, len(words))
	total := 0
	for _, w := range words {
		n, err := c.Count(w)
		if err != nil {
			return nil, 0, err
		}
		infos = append(infos, WordInfo{Word: w, Syllables: n})
		total += n
	}
	return infos, total, nil
}
