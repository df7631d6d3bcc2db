package jpoetry

import (
	"strconv"
	"strings"
)

var superscriptDigits = strings.NewReplacer(
	"0", "⁰", "1", "¹", "2", "²", "3", "³", "4", "⁴",
	"5", "⁵", "6", "⁶", "7", "⁷", "8", "⁸", "9", "⁹",
)

func superscript(n int) string {
	return superscriptDigits.Replace(strconv.Itoa(n))
}

// WordInfo is a word with its syllable count.
type WordInfo struct {
	Word      string `json:"word"`
	Syllables int    `json:"syllables"`
}

func (w WordInfo) String() string {
	return w.Word
}

// Describe renders the word with a superscript syllable count: "видос²".
func (w WordInfo) Describe() string {
	return w.Word + superscript(w.Syllables)
}

// LineInfo holds the annotated words of one line.
type LineInfo struct {
	Words     []WordInfo `json:"words"`
	Syllables int        `json:"syllables"`
}

// Describe renders every word of the line followed by the line total.
func (l LineInfo) Describe() string {
	parts := make([]string, 0, len(l.Words)+1)
	for _, w := range l.Words {
		parts = append(parts, w.Describe())
	}
	parts = append(parts, "("+superscript(l.Syllables)+")")
	return strings.Join(parts, " ")
}
