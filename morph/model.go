package morph

import (
	"fmt"
	"strconv"
	"strings"
)

// parseSlots expands a slot list such as "1-6,19,25-30".
func parseSlots(s string) ([]int, error) {
	var slots []int
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		lo, hi, isRange := strings.Cut(item, "-")
		first, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("bad slot %q", item)
		}
		last := first
		if isRange {
			if last, err = strconv.Atoi(hi); err != nil || last < first {
				return nil, fmt.Errorf("bad slot range %q", item)
			}
		}
		for n := first; n <= last; n++ {
			slots = append(slots, n)
		}
	}
	return slots, nil
}

// Desinence is an ending attached to radical RadNum to produce the form of Slot.
type Desinence struct {
	// Ending is empty for the bare radical.
	Ending string
	Slot   int
	RadNum int
	Model  *Model
}

// Model is a paradigm: how radicals derive from the dictionary form and
// which endings fill each slot.
type Model struct {
	Name string
	// RadicalRules holds "K" to keep the dictionary form, or "n,suffix"
	// to drop n runes and append suffix ("0" for none).
	RadicalRules map[int]string
	// Desinences lists the endings of each slot.
	Desinences map[int][]*Desinence

	parent *Model
	tag    Tag
}

func newModel(name string) *Model {
	return &Model{
		Name:         name,
		RadicalRules: make(map[int]string),
		Desinences:   make(map[int][]*Desinence),
	}
}

// DesinencesAt returns the endings of slot.
func (m *Model) DesinencesAt(slot int) []*Desinence {
	return m.Desinences[slot]
}

// Inherits reports whether m is name or derives from it.
func (m *Model) Inherits(name string) bool {
	for p := m; p != nil; p = p.parent {
		if p.Name == name {
			return true
		}
	}
	return false
}

// POS returns the tag given to lemmas that declare none.
func (m *Model) POS() Tag {
	return m.tag
}

// inherit copies the parent's tag, radical rules and the endings of every
// slot m does not define itself.
func (m *Model) inherit(register func(*Desinence)) {
	if m.parent == nil {
		return
	}
	if m.tag == "" {
		m.tag = m.parent.tag
	}
	for rn, rule := range m.parent.RadicalRules {
		if _, ok := m.RadicalRules[rn]; !ok {
			m.RadicalRules[rn] = rule
		}
	}
	for slot, endings := range m.parent.Desinences {
		if _, ok := m.Desinences[slot]; ok {
			continue
		}
		for _, d := range endings {
			own := &Desinence{Ending: d.Ending, Slot: d.Slot, RadNum: d.RadNum, Model: m}
			m.Desinences[slot] = append(m.Desinences[slot], own)
			register(own)
		}
	}
}
