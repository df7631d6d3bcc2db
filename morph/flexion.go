package morph

import "slices"

// inflectionTable computes the full inflection table for a lemma.
func (l *Lexicon) inflectionTable(lemma *Lemma) *InflectionTable {
	if lemma == nil || lemma.model == nil {
		return nil
	}

	table := &InflectionTable{
		Lemma: lemma,
		Cells: make(map[int][]string),
	}
	for slot := 1; slot < len(l.morphos); slot++ {
		if forms := l.inflectedForms(lemma, slot); len(forms) > 0 {
			table.Cells[slot] = forms
		}
	}
	return table
}

// inflectedForms returns the list of inflected forms for a lemma at slot.
// Regular forms come first, then non-exclusive irregulars.
func (l *Lexicon) inflectedForms(lemma *Lemma, slot int) []string {
	if lemma == nil || lemma.model == nil {
		return nil
	}

	if lemma.isExclusiveIrreg(slot) {
		return unique(lemma.irregsAt(slot))
	}

	var forms []string
	for _, d := range lemma.model.DesinencesAt(slot) {
		for _, rad := range lemma.RadicalsAt(d.RadNum) {
			forms = append(forms, rad.Form+d.Ending)
		}
	}
	forms = append(forms, lemma.irregsAt(slot)...)
	return unique(forms)
}

// slotWith returns the first slot holding a form of lemma whose grammemes
// include those of slot from, with the case replaced by c and, when number
// is not empty, the number replaced too. Plural targets ignore gender.
// It returns 0 when no slot matches.
func (l *Lexicon) slotWith(lemma *Lemma, from int, number string, c Case) int {
	var want []string
	plural := number == "plur"
	for _, g := range grammemes(l.Morpho(from)) {
		switch {
		case isCase(g):
		case number != "" && (g == "sing" || g == "plur"):
		default:
			if g == "plur" {
				plural = true
			}
			want = append(want, g)
		}
	}
	if plural {
		want = slices.DeleteFunc(want, isGender)
	}
	if number != "" {
		want = append(want, number)
	}
	want = append(want, string(c))

	for slot := 1; slot < len(l.morphos); slot++ {
		have := grammemes(l.morphos[slot])
		if !containsAll(have, want) {
			continue
		}
		if len(l.inflectedForms(lemma, slot)) > 0 {
			return slot
		}
	}
	return 0
}

func containsAll(have, want []string) bool {
	for _, w := range want {
		if !slices.Contains(have, w) {
			return false
		}
	}
	return true
}

// unique returns a deduplicated slice preserving order.
func unique(ss []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
