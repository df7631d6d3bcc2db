package jpoetry

import (
	"fmt"
	"slices"
	"strings"
)

// IssueKind classifies a deviation of a phrase from its ideal shape.
type IssueKind int

const (
	TooManySyllables IssueKind = iota + 1
	NotEnoughSyllables
	UnmatchedQuote
	ForbiddenTrailingWord
	ForbiddenPunctuation
	CharacterLossTooSevere
)

var issueNames = map[IssueKind]string{
	TooManySyllables:       "too_many_syllables",
	NotEnoughSyllables:     "not_enough_syllables",
	UnmatchedQuote:         "unmatched_quote",
	ForbiddenTrailingWord:  "forbidden_trailing_word",
	ForbiddenPunctuation:   "forbidden_punctuation",
	CharacterLossTooSevere: "character_loss_too_severe",
}

func (k IssueKind) String() string {
	if name, ok := issueNames[k]; ok {
		return name
	}
	return fmt.Sprintf("issue(%d)", int(k))
}

// MarshalText lets issue kinds appear by name in JSON.
func (k IssueKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Issue is a flagged deviation with an optional detail for diagnostics.
type Issue struct {
	Kind   IssueKind `json:"kind"`
	Detail string    `json:"detail,omitempty"`
}

func (i Issue) String() string {
	if i.Detail == "" {
		return i.Kind.String()
	}
	return i.Kind.String() + ": " + i.Detail
}

// forbiddenTrailingWords may not end a phrase, except the pre-final one.
var forbiddenTrailingWords = map[string]bool{
	"в": true, "на": true, "из-под": true, "под": true, "или": true, "по": true, "над": true,
}

// Phrase is one line of a poem being built word by word.
type Phrase struct {
	Index     int        `json:"index"`
	LastIndex int        `json:"last_index"`
	Expected  int        `json:"expected"`
	Words     []WordInfo `json:"words"`
	Syllables int        `json:"syllables"`
	Issues    []Issue    `json:"issues,omitempty"`

	openQuotes  int
	closeQuotes int
}

func newPhrase(index, last, expected int) *Phrase {
	p := &Phrase{Index: index, LastIndex: last, Expected: expected}
	p.syncSyllableIssues()
	return p
}

// HasIssue reports whether the phrase carries an issue of kind k.
func (p *Phrase) HasIssue(k IssueKind) bool {
	return slices.ContainsFunc(p.Issues, func(i Issue) bool { return i.Kind == k })
}

// Issues are a set by kind: the first detail wins.
func (p *Phrase) addIssue(k IssueKind, detail string) {
	if !p.HasIssue(k) {
		p.Issues = append(p.Issues, Issue{Kind: k, Detail: detail})
	}
}

func (p *Phrase) removeIssue(k IssueKind) {
	p.Issues = slices.DeleteFunc(p.Issues, func(i Issue) bool { return i.Kind == k })
}

func (p *Phrase) syncSyllableIssues() {
	if p.Syllables < p.Expected {
		p.addIssue(NotEnoughSyllables, fmt.Sprintf("%d of %d", p.Syllables, p.Expected))
	} else {
		p.removeIssue(NotEnoughSyllables)
	}
	if p.Syllables > p.Expected {
		p.addIssue(TooManySyllables, fmt.Sprintf("%d of %d", p.Syllables, p.Expected))
	}
}

// PreFinal reports whether this is the second-to-last phrase.
func (p *Phrase) PreFinal() bool {
	return p.Index == p.LastIndex-1
}

// Final reports whether the phrase reached its syllable target.
func (p *Phrase) Final() bool {
	return p.Syllables >= p.Expected
}

// add appends a word, stripping characters filter cannot render.
func (p *Phrase) add(w WordInfo, filter CharFilter) {
	if strings.HasPrefix(w.Word, "«") || strings.HasPrefix(w.Word, `"`) || strings.HasPrefix(w.Word, "'") {
		p.openQuotes++
	}
	if strings.HasSuffix(w.Word, "»") || strings.HasSuffix(w.Word, `"`) || strings.HasSuffix(w.Word, "'") {
		p.closeQuotes++
	}

	stripped := filter.Strip(w.Word)
	if !strings.Contains(w.Word, stripped) {
		p.addIssue(CharacterLossTooSevere, w.Word)
	}

	p.Syllables += w.Syllables
	if !p.Final() && p.openQuotes == p.closeQuotes && strings.ContainsAny(stripped, ".!?") {
		p.addIssue(ForbiddenPunctuation, stripped)
	}

	p.Words = append(p.Words, WordInfo{Word: strings.ToLower(strings.TrimSpace(stripped)), Syllables: w.Syllables})
	p.syncSyllableIssues()
}

// close applies the rules that depend on the phrase being complete.
func (p *Phrase) close() {
	if p.openQuotes != p.closeQuotes {
		p.addIssue(UnmatchedQuote, fmt.Sprintf("%d opened, %d closed", p.openQuotes, p.closeQuotes))
	}
	for i := len(p.Words) - 1; i >= 0; i-- {
		w := p.Words[i].Word
		if w == "" {
			continue
		}
		if forbiddenTrailingWords[w] && !p.PreFinal() {
			p.addIssue(ForbiddenTrailingWord, w)
		}
		break
	}
}

// String joins the non-empty words of the phrase.
func (p *Phrase) String() string {
	words := make([]string, 0, len(p.Words))
	for _, w := range p.Words {
		if w.Word != "" {
			words = append(words, w.Word)
		}
	}
	return strings.Join(words, " ")
}

// Describe renders the phrase position, annotated words and total:
// "1/3. я¹ вспомнил² видос,² (⁵)".
func (p *Phrase) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d/%d.", p.Index+1, p.LastIndex+1)
	for _, w := range p.Words {
		if w.Word == "" {
			continue
		}
		b.WriteString(" ")
		b.WriteString(w.Describe())
	}
	fmt.Fprintf(&b, " (%s)", superscript(p.Syllables))
	return b.String()
}

// Poem is a text cut into the phrases of a genre.
type Poem struct {
	Genre   Genre     `json:"genre"`
	Phrases []*Phrase `json:"phrases"`
	// Issues is the number of issues over all phrases.
	Issues int `json:"issues"`
}

// String joins the phrases with newlines.
func (p *Poem) String() string {
	lines := make([]string, len(p.Phrases))
	for i, ph := range p.Phrases {
		lines[i] = ph.String()
	}
	return strings.Join(lines, "\n")
}

// Describe renders the genre title followed by every phrase description.
func (p *Poem) Describe() string {
	lines := make([]string, len(p.Phrases))
	for i, ph := range p.Phrases {
		lines[i] = ph.Describe()
	}
	return p.Genre.String() + "\n\n" + strings.Join(lines, "\n")
}
