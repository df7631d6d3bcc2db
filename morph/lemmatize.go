package morph

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
)

var (
	// reInteger matches "56" and "56-й".
	reInteger = regexp.MustCompile(`^\d+(?:-([а-яё]+))?$`)
	// reReal matches "3.5" and "3,5".
	reReal = regexp.MustCompile(`^\d+[.,]\d+$`)
)

// ordinalSuffixes are the endings that turn a digit token into an ordinal.
// "х" and "ю" are left out: "5-х" and "5-ю" read as cardinals as often as not.
var ordinalSuffixes = map[string]bool{
	"й": true, "я": true, "е": true, "го": true, "му": true, "м": true,
	"ой": true, "ый": true, "ий": true, "ая": true, "ое": true, "ее": true,
	"ые": true, "ие": true, "ую": true, "ых": true, "их": true, "ым": true,
	"им": true, "ом": true, "ем": true, "ого": true, "его": true, "ому": true,
	"ему": true, "ыми": true, "ими": true,
}

// numberToken analyses tokens written with digits.
func numberToken(word string) (Analysis, bool) {
	if m := reInteger.FindStringSubmatch(word); m != nil {
		tag := Tag("NUMB,intg")
		if m[1] != "" {
			if !ordinalSuffixes[m[1]] {
				return Analysis{}, false
			}
			tag = "ADJF,Anum"
		}
		return Analysis{Word: word, Normal: word, Tag: tag}, true
	}
	if reReal.MatchString(word) {
		return Analysis{Word: word, Normal: word, Tag: "NUMB,real"}, true
	}
	return Analysis{}, false
}

// lemmatize is the core lemmatization function. It tries irregular forms
// first, then every radical + desinence split of the folded form.
// Results are ordered by lemma position in the lexicon, then by slot.
func (l *Lexicon) lemmatize(form string) []Analysis {
	if form == "" {
		return nil
	}
	key := Fold(form)

	type hit struct {
		lemma *Lemma
		slot  int
	}
	var hits []hit

	for _, irr := range l.irregs[key] {
		for _, slot := range irr.Slots {
			hits = append(hits, hit{irr.Lemma, slot})
		}
	}

	// Split at each rune boundary: key[:i] = stem, key[i:] = ending.
	runes := []rune(key)
	for i := 0; i <= len(runes); i++ {
		rads, ok := l.radicals[string(runes[:i])]
		if !ok {
			continue
		}
		des, ok := l.desinences[string(runes[i:])]
		if !ok {
			continue
		}
		for _, rad := range rads {
			lemma := rad.Lemma
			for _, de := range des {
				if de.Model != lemma.model || de.RadNum != rad.Num {
					continue
				}
				if lemma.isExclusiveIrreg(de.Slot) {
					continue
				}
				if de.Slot < 1 || de.Slot >= len(l.morphos) {
					continue
				}
				hits = append(hits, hit{lemma, de.Slot})
			}
		}
	}

	slices.SortStableFunc(hits, func(a, b hit) int {
		if c := cmp.Compare(a.lemma.order, b.lemma.order); c != 0 {
			return c
		}
		return cmp.Compare(a.slot, b.slot)
	})
	hits = slices.Compact(hits)

	analyses := make([]Analysis, 0, len(hits))
	for _, h := range hits {
		analyses = append(analyses, Analysis{
			Word:   strings.ToLower(form),
			Normal: h.lemma.Normal,
			Tag:    h.lemma.Tag + " " + Tag(l.morphos[h.slot]),
			lemma:  h.lemma,
			slot:   h.slot,
		})
	}
	return analyses
}
