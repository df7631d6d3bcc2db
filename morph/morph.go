// Package morph provides Russian morphological analysis for numerals and the
// handful of unit nouns that accompany them. The lexicon is data driven: the
// paradigm models, lemma list, grammeme slots and irregular forms are parsed
// from the files under data/, which are embedded at compile time.
//
// Basic usage:
//
//	lex, err := morph.Default()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	a, _ := lex.Parse("тысяч")            // Normal "тысяча", Tag "NOUN,inan plur,gent"
//	w, _ := lex.Inflect(a, morph.Dative) // "тысячам"
package morph

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
)

//go:embed data/morphos.ru data/modeles.ru data/lemmes.ru data/irregs.ru
var dataFS embed.FS

var (
	// ErrUnknownWord is returned when a word cannot be analysed at all.
	ErrUnknownWord = errors.New("morph: unknown word")
	// ErrNoForm is returned when a lemma has no form for the requested grammemes.
	ErrNoForm = errors.New("morph: no such form")
)

// Lexicon holds all loaded data and provides the public API.
// It is safe for concurrent use once constructed.
type Lexicon struct {
	// morphos stores slot grammemes indexed 1-based.
	// Index 0 is unused; morphos[1] = "masc,sing,nomn", etc.
	morphos []string

	// models maps model name → *Model.
	models map[string]*Model

	// lemmas maps Fold(lemma) → *Lemma.
	lemmas map[string]*Lemma

	// desinences maps Fold(ending) → []*Desinence.
	desinences map[string][]*Desinence

	// radicals maps Fold(stem) → []*Radical.
	radicals map[string][]*Radical

	// irregs maps Fold(form) → []*Irreg.
	irregs map[string][]*Irreg
}

// New loads the lexicon from fsys, which must contain data/morphos.ru,
// data/modeles.ru, data/lemmes.ru and data/irregs.ru.
func New(fsys fs.FS) (*Lexicon, error) {
	l := &Lexicon{
		morphos:    []string{""}, // index 0 unused; 1-based
		models:     make(map[string]*Model),
		lemmas:     make(map[string]*Lemma),
		desinences: make(map[string][]*Desinence),
		radicals:   make(map[string][]*Radical),
		irregs:     make(map[string][]*Irreg),
	}

	if err := l.loadMorphos(fsys); err != nil {
		return nil, err
	}
	if err := l.loadModels(fsys); err != nil {
		return nil, err
	}
	if err := l.loadLexicon(fsys); err != nil {
		return nil, err
	}
	if err := l.loadIrregs(fsys); err != nil {
		return nil, err
	}
	return l, nil
}

var (
	defaultLexicon *Lexicon
	defaultOnce    sync.Once
	defaultErr     error
)

// Default returns the shared Lexicon loaded from the embedded data.
// It is initialised on the first call and cached.
func Default() (*Lexicon, error) {
	defaultOnce.Do(func() {
		defaultLexicon, defaultErr = New(dataFS)
	})
	return defaultLexicon, defaultErr
}

// Morpho returns the grammemes of 1-based slot m.
func (l *Lexicon) Morpho(m int) string {
	if m < 1 || m >= len(l.morphos) {
		return ""
	}
	return l.morphos[m]
}

// Lemma looks up a lemma by its dictionary form.
func (l *Lexicon) Lemma(key string) *Lemma {
	return l.lemmas[Fold(key)]
}

// Parse returns the most probable analysis of word. Number tokens such as
// "56", "3.5" or "56-й" are analysed without the dictionary.
func (l *Lexicon) Parse(word string) (Analysis, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return Analysis{}, fmt.Errorf("%w: empty word", ErrUnknownWord)
	}
	if a, ok := numberToken(word); ok {
		return a, nil
	}
	analyses := l.lemmatize(word)
	if len(analyses) == 0 {
		return Analysis{}, fmt.Errorf("%w: %q", ErrUnknownWord, word)
	}
	return analyses[0], nil
}

// ParseAll returns every analysis of word in lexicon order.
func (l *Lexicon) ParseAll(word string) []Analysis {
	return l.lemmatize(strings.ToLower(strings.TrimSpace(word)))
}

// Inflect returns the form of a's lemma in case c, keeping gender and number.
func (l *Lexicon) Inflect(a Analysis, c Case) (string, error) {
	a, err := l.resolve(a)
	if err != nil {
		return "", err
	}
	slot := l.slotWith(a.lemma, a.slot, "", c)
	if slot == 0 {
		return "", fmt.Errorf("%w: %s %s", ErrNoForm, a.Normal, c)
	}
	return l.inflectedForms(a.lemma, slot)[0], nil
}

// Lexeme returns every form of a's lemma, slot by slot, without duplicates.
func (l *Lexicon) Lexeme(a Analysis) ([]string, error) {
	a, err := l.resolve(a)
	if err != nil {
		return nil, err
	}
	var forms []string
	for slot := 1; slot < len(l.morphos); slot++ {
		forms = append(forms, l.inflectedForms(a.lemma, slot)...)
	}
	return unique(forms), nil
}

// AgreeWithNumber returns the form of word that follows the cardinal n:
// "1 слог", "2 слога", "5 слогов".
func (l *Lexicon) AgreeWithNumber(word string, n int) (string, error) {
	a, err := l.Parse(word)
	if err != nil {
		return "", err
	}
	if a.lemma == nil {
		return "", fmt.Errorf("%w: %q is not a dictionary word", ErrNoForm, word)
	}
	if n < 0 {
		n = -n
	}
	number, c := "plur", Genitive
	switch {
	case n%10 == 1 && n%100 != 11:
		number, c = "sing", Nominative
	case n%10 >= 2 && n%10 <= 4 && (n%100 < 12 || n%100 > 14):
		number, c = "sing", Genitive
	}
	slot := l.slotWith(a.lemma, a.slot, number, c)
	if slot == 0 {
		return "", fmt.Errorf("%w: %s %s %s", ErrNoForm, a.Normal, number, c)
	}
	return l.inflectedForms(a.lemma, slot)[0], nil
}

// InflectionTable computes the full inflection table for a lemma.
func (l *Lexicon) InflectionTable(lemma *Lemma) *InflectionTable {
	return l.inflectionTable(lemma)
}

// resolve makes sure a carries its lemma, re-parsing the surface form when
// the analysis was built outside the lexicon.
func (l *Lexicon) resolve(a Analysis) (Analysis, error) {
	if a.lemma != nil {
		return a, nil
	}
	word := a.Word
	if word == "" {
		word = a.Normal
	}
	analyses := l.lemmatize(strings.ToLower(word))
	if len(analyses) == 0 {
		return a, fmt.Errorf("%w: %q has no lexeme", ErrUnknownWord, word)
	}
	return analyses[0], nil
}

// addDesinence inserts a desinence into the global desinences map.
func (l *Lexicon) addDesinence(d *Desinence) {
	key := Fold(d.Ending)
	l.desinences[key] = append(l.desinences[key], d)
}

// addRadical inserts a radical into the global radicals map.
func (l *Lexicon) addRadical(r *Radical) {
	key := Fold(r.Form)
	l.radicals[key] = append(l.radicals[key], r)
}
