package morph

import (
	"bufio"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"
)

// scanData calls fn for every non-empty, non-comment line of data/name.
func scanData(fsys fs.FS, name string, fn func(line string)) error {
	f, err := fsys.Open(path.Join("data", name))
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		fn(line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}

// loadMorphos reads data/morphos.ru into l.morphos (1-based).
// Format: "n:grammemes".
func (l *Lexicon) loadMorphos(fsys fs.FS) error {
	return scanData(fsys, "morphos.ru", func(line string) {
		if _, g, ok := strings.Cut(line, ":"); ok {
			l.morphos = append(l.morphos, g)
		}
	})
}

// loadModels reads data/modeles.ru. Each model starts at a "modele:" line;
// a parent must be declared before its children.
func (l *Lexicon) loadModels(fsys fs.FS) error {
	var (
		m    *Model
		errs []string
	)
	finish := func() {
		if m == nil {
			return
		}
		m.inherit(l.addDesinence)
		l.models[m.Name] = m
	}

	err := scanData(fsys, "modeles.ru", func(line string) {
		directive, value, _ := strings.Cut(line, ":")
		if directive == "modele" {
			finish()
			m = newModel(value)
			return
		}
		if m == nil {
			errs = append(errs, line)
			return
		}
		if err := l.modelLine(m, directive, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", m.Name, err))
		}
	})
	if err != nil {
		return err
	}
	finish()
	if len(errs) > 0 {
		return fmt.Errorf("modeles.ru: %d bad lines, first %q", len(errs), errs[0])
	}
	return nil
}

// modelLine applies one directive of a model block.
func (l *Lexicon) modelLine(m *Model, directive, value string) error {
	switch directive {
	case "pere":
		if m.parent = l.models[value]; m.parent == nil {
			return fmt.Errorf("unknown parent %q", value)
		}
	case "pos":
		m.tag = Tag(value)
	case "R":
		num, rule, ok := strings.Cut(value, ":")
		rn, err := strconv.Atoi(num)
		if !ok || err != nil {
			return fmt.Errorf("bad radical rule %q", value)
		}
		m.RadicalRules[rn] = rule
	case "des":
		fields := strings.SplitN(value, ":", 3)
		if len(fields) < 3 {
			return fmt.Errorf("bad endings %q", value)
		}
		slots, err := parseSlots(fields[0])
		if err != nil {
			return err
		}
		rn, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("bad radical number %q", fields[1])
		}
		// Endings pair with slots; the last one repeats for the rest.
		endings := strings.Split(fields[2], ";")
		for i, slot := range slots {
			variants := endings[min(i, len(endings)-1)]
			for _, ending := range strings.Split(variants, ",") {
				if ending == "-" {
					ending = ""
				}
				d := &Desinence{Ending: ending, Slot: slot, RadNum: rn, Model: m}
				m.Desinences[slot] = append(m.Desinences[slot], d)
				l.addDesinence(d)
			}
		}
	default:
		return fmt.Errorf("unknown directive %q", directive)
	}
	return nil
}

// loadLexicon reads data/lemmes.ru and builds l.lemmas and l.radicals.
func (l *Lexicon) loadLexicon(fsys fs.FS) error {
	var bad []string
	err := scanData(fsys, "lemmes.ru", func(line string) {
		lemma := newLemma(line)
		if lemma == nil {
			bad = append(bad, line)
			return
		}
		lemma.model = l.models[lemma.modelName]
		if lemma.model == nil {
			bad = append(bad, line)
			return
		}
		if lemma.Tag == "" {
			lemma.Tag = lemma.model.POS()
		}
		lemma.order = len(l.lemmas)
		l.lemmas[lemma.Key] = lemma
		l.buildRadicals(lemma)
	})
	if err != nil {
		return err
	}
	if len(bad) > 0 {
		return fmt.Errorf("lemmes.ru: %d malformed entries, first %q", len(bad), bad[0])
	}
	return nil
}

// stemFromLemma computes the stem from a dictionary form and a radical
// rule string ("K" or "n,suffix").
func stemFromLemma(form, rule string) string {
	if rule == "K" {
		return form
	}
	n, suffix, _ := strings.Cut(rule, ",")
	drop, _ := strconv.Atoi(n)
	runes := []rune(form)
	drop = min(drop, len(runes))
	stem := string(runes[:len(runes)-drop])
	if suffix != "0" {
		stem += suffix
	}
	return stem
}

// buildRadicals computes all radicals for a lemma from its model's radical
// rules, then registers them in the global radicals map. Explicit radicals
// from lemmes.ru take precedence over the rules.
func (l *Lexicon) buildRadicals(lemma *Lemma) {
	for _, rads := range lemma.radicals {
		for _, r := range rads {
			l.addRadical(r)
		}
	}

	for rn, rule := range lemma.model.RadicalRules {
		if _, exists := lemma.radicals[rn]; exists {
			continue
		}
		r := &Radical{Form: stemFromLemma(lemma.Normal, rule), Num: rn, Lemma: lemma}
		lemma.radicals[rn] = append(lemma.radicals[rn], r)
		l.addRadical(r)
	}
}

// loadIrregs reads data/irregs.ru. Format: form[*]:lemma:slots, where "*"
// marks a form that replaces the regular ones of its slots.
func (l *Lexicon) loadIrregs(fsys fs.FS) error {
	var bad []string
	err := scanData(fsys, "irregs.ru", func(line string) {
		fields := strings.Split(line, ":")
		if len(fields) != 3 {
			bad = append(bad, line)
			return
		}
		form, exclusive := strings.CutSuffix(fields[0], "*")
		lemma := l.lemmas[Fold(fields[1])]
		slots, err := parseSlots(fields[2])
		if lemma == nil || err != nil {
			bad = append(bad, line)
			return
		}

		irr := &Irreg{Form: form, Exclusive: exclusive, Lemma: lemma, Slots: slots}
		key := Fold(form)
		l.irregs[key] = append(l.irregs[key], irr)
		lemma.addIrreg(irr)
	})
	if err != nil {
		return err
	}
	if len(bad) > 0 {
		return fmt.Errorf("irregs.ru: %d malformed entries, first %q", len(bad), bad[0])
	}
	return nil
}
