package morph

import (
	"slices"
	"strconv"
	"strings"
)

// Radical is a stem of a lemma. Desinences with the same Num attach to it.
type Radical struct {
	Form  string
	Num   int
	Lemma *Lemma
}

// Irreg is a form listed in irregs.ru rather than built from a radical.
type Irreg struct {
	Form string
	// Exclusive forms replace the regular ones of their slots instead of
	// adding to them.
	Exclusive bool
	Lemma     *Lemma
	Slots     []int
}

// Lemma is a dictionary word.
type Lemma struct {
	// Key is Normal folded for lookups.
	Key    string
	Normal string
	// Tag holds the lexical grammemes, e.g. "NUMR" or "ADJF,Anum".
	Tag Tag

	modelName string
	model     *Model
	// order is the line position in lemmes.ru; analyses follow it.
	order int

	radicals map[int][]*Radical
	irregs   []*Irreg
	replaced map[int]bool
}

// newLemma parses "lemma|model|n=stem;n=stem|tag". It returns nil when the
// lemma or model is missing.
func newLemma(line string) *Lemma {
	fields := strings.Split(line, "|")
	if len(fields) < 2 || fields[0] == "" || fields[1] == "" {
		return nil
	}

	l := &Lemma{
		Key:       Fold(fields[0]),
		Normal:    fields[0],
		modelName: fields[1],
		radicals:  make(map[int][]*Radical),
		replaced:  make(map[int]bool),
	}
	if len(fields) > 2 && fields[2] != "" {
		for _, entry := range strings.Split(fields[2], ";") {
			num, stems, ok := strings.Cut(entry, "=")
			n, err := strconv.Atoi(num)
			if !ok || err != nil {
				continue
			}
			for _, stem := range strings.Split(stems, ",") {
				if stem != "" {
					l.radicals[n] = append(l.radicals[n], &Radical{Form: stem, Num: n, Lemma: l})
				}
			}
		}
	}
	if len(fields) > 3 {
		l.Tag = Tag(fields[3])
	}
	return l
}

// Model returns the paradigm of the lemma.
func (l *Lemma) Model() *Model {
	return l.model
}

func (l *Lemma) addIrreg(irr *Irreg) {
	l.irregs = append(l.irregs, irr)
	if irr.Exclusive {
		for _, slot := range irr.Slots {
			l.replaced[slot] = true
		}
	}
}

// isExclusiveIrreg reports whether slot is filled by exclusive irregulars only.
func (l *Lemma) isExclusiveIrreg(slot int) bool {
	return l.replaced[slot]
}

func (l *Lemma) irregsAt(slot int) []string {
	var forms []string
	for _, irr := range l.irregs {
		if slices.Contains(irr.Slots, slot) {
			forms = append(forms, irr.Form)
		}
	}
	return forms
}

// RadicalsAt returns the radicals numbered n.
func (l *Lemma) RadicalsAt(n int) []*Radical {
	return l.radicals[n]
}
