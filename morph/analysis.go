package morph

import "strings"

// Case is an OpenCorpora case grammeme.
type Case string

const (
	Nominative    Case = "nomn"
	Genitive      Case = "gent"
	Dative        Case = "datv"
	Accusative    Case = "accs"
	Instrumental  Case = "ablt"
	Prepositional Case = "loct"
)

// Cases lists the supported cases in declension order.
var Cases = []Case{Nominative, Genitive, Dative, Accusative, Instrumental, Prepositional}

// ParseCase maps a grammeme name to a Case.
func ParseCase(s string) (Case, bool) {
	for _, c := range Cases {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

func isCase(g string) bool {
	_, ok := ParseCase(g)
	return ok
}

func isGender(g string) bool {
	return g == "masc" || g == "femn" || g == "neut"
}

// Tag is an OpenCorpora-style grammeme string, e.g. "NOUN,inan femn,sing,gent".
type Tag string

// Has reports whether the tag carries grammeme g.
func (t Tag) Has(g string) bool {
	for _, f := range grammemes(string(t)) {
		if f == g {
			return true
		}
	}
	return false
}

// POS returns the part-of-speech grammeme, the first token of the tag.
func (t Tag) POS() string {
	if i := strings.IndexAny(string(t), ", "); i >= 0 {
		return string(t[:i])
	}
	return string(t)
}

// Case returns the case grammeme of the tag, if any.
func (t Tag) Case() Case {
	for _, g := range grammemes(string(t)) {
		if c, ok := ParseCase(g); ok {
			return c
		}
	}
	return ""
}

func grammemes(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
}

// Analysis holds a single morphological analysis of a word form.
type Analysis struct {
	// Word is the analysed form, lower-cased.
	Word string
	// Normal is the dictionary form of the lemma.
	Normal string
	// Tag is the lemma tag followed by the slot grammemes.
	Tag Tag

	lemma *Lemma
	slot  int
}

// Slot returns the 1-based grammeme slot of the analysis, 0 for number tokens.
func (a Analysis) Slot() int {
	return a.slot
}

// InflectionTable holds the full inflection table for a lemma.
type InflectionTable struct {
	// Lemma is the lemma for which this table was computed.
	Lemma *Lemma
	// Cells maps slot (1-based) to the list of inflected forms.
	Cells map[int][]string
}
