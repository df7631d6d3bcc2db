package jpoetry

import "github.com/jpoetry/jpoetry/morph"

// Morphology is the word analyser the speller and detector rely on.
// morph.Lexicon is the stock implementation.
type Morphology interface {
	// Parse returns the most probable analysis of word.
	Parse(word string) (morph.Analysis, error)
	// Inflect puts the analysed word into case c.
	Inflect(a morph.Analysis, c morph.Case) (string, error)
	// Lexeme lists every form of the analysed word.
	Lexeme(a morph.Analysis) ([]string, error)
	// AgreeWithNumber returns the form of word that follows the cardinal n.
	AgreeWithNumber(word string, n int) (string, error)
}

var _ Morphology = (*morph.Lexicon)(nil)

// CharFilter drops characters that cannot be rendered.
type CharFilter interface {
	Strip(text string) string
}

// AgreeWithNumber returns word agreed with n, or word itself when m
// cannot analyse it.
func AgreeWithNumber(m Morphology, word string, n int) string {
	agreed, err := m.AgreeWithNumber(word, n)
	if err != nil {
		return word
	}
	return agreed
}
