package jpoetry

import "fmt"

// Composer cuts annotated words into the phrases of a shape.
type Composer struct {
	filter CharFilter
}

// NewComposer returns a composer stripping words with filter.
func NewComposer(filter CharFilter) *Composer {
	return &Composer{filter: filter}
}

// Compose pulls words greedily into each phrase until its syllable target
// is reached; the last phrase takes whatever words remain. In strict mode
// the first phrase with an issue aborts with a *PhraseError.
func (c *Composer) Compose(words []WordInfo, shape Shape, strict bool) ([]*Phrase, []Issue, error) {
	last := len(shape.Syllables) - 1
	phrases := make([]*Phrase, 0, len(shape.Syllables))
	var issues []Issue

	pos := 0
	for i, target := range shape.Syllables {
		p := newPhrase(i, last, target)
		for pos < len(words) && (p.Syllables < target || i == last) {
			p.add(words[pos], c.filter)
			pos++
		}
		p.close()
		if strict && len(p.Issues) > 0 {
			return nil, nil, &PhraseError{Phrase: p}
		}
		phrases = append(phrases, p)
		issues = append(issues, p.Issues...)
	}
	return phrases, issues, nil
}

// ComposeLines gives each line to its phrase whole.
func (c *Composer) ComposeLines(lines []LineInfo, shape Shape, strict bool) ([]*Phrase, []Issue, error) {
	if len(lines) != len(shape.Syllables) {
		return nil, nil, fmt.Errorf("%w: %d lines for %d phrases of %s", ErrBadPhrase, len(lines), len(shape.Syllables), shape.Genre.Name())
	}
	last := len(shape.Syllables) - 1
	phrases := make([]*Phrase, 0, len(lines))
	var issues []Issue

	for i, line := range lines {
		p := newPhrase(i, last, shape.Syllables[i])
		for _, w := range line.Words {
			p.add(w, c.filter)
		}
		p.close()
		if strict && len(p.Issues) > 0 {
			return nil, nil, &PhraseError{Phrase: p}
		}
		phrases = append(phrases, p)
		issues = append(issues, p.Issues...)
	}
	return phrases, issues, nil
}
