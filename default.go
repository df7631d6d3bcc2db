package jpoetry

import (
	"iter"
	"sync"

	"github.com/jpoetry/jpoetry/morph"
)

var defaultDetector = sync.OnceValues(func() (*Detector, error) {
	lex, err := morph.Default()
	if err != nil {
		return nil, err
	}
	return NewDetector(lex), nil
})

// Default returns a detector backed by the embedded lexicon.
func Default() (*Detector, error) {
	return defaultDetector()
}

// CountSyllables counts the syllables of token with the default detector.
func CountSyllables(token string) (int, error) {
	d, err := Default()
	if err != nil {
		return 0, err
	}
	return d.Counter().Count(token)
}

// SpellNumber spells token with the default detector.
func SpellNumber(token string, c morph.Case) (string, error) {
	d, err := Default()
	if err != nil {
		return "", err
	}
	return d.Speller().Spell(token, c)
}

// Annotate counts the syllables of words with the default detector.
func Annotate(words []string) ([]WordInfo, int, error) {
	d, err := Default()
	if err != nil {
		return nil, 0, err
	}
	return d.Counter().Annotate(words)
}

// DetectPoem runs Detector.DetectPoem with the default detector.
func DetectPoem(text string) (*Poem, []LineInfo, error) {
	d, err := Default()
	if err != nil {
		return nil, nil, err
	}
	return d.DetectPoem(text)
}

// DetectPoems runs Detector.DetectPoems with the default detector.
func DetectPoems(text string, strict bool) ([]*Poem, []LineInfo, error) {
	d, err := Default()
	if err != nil {
		return nil, nil, err
	}
	return d.DetectPoems(text, strict)
}

// IterPoems runs Detector.IterPoems with the default detector. It yields
// nothing when the lexicon cannot be loaded.
func IterPoems(text string) iter.Seq[*Poem] {
	return func(yield func(*Poem) bool) {
		d, err := Default()
		if err != nil {
			return
		}
		for p := range d.IterPoems(text) {
			if !yield(p) {
				return
			}
		}
	}
}
