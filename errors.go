package jpoetry

import (
	"errors"
	"fmt"
)

var (
	// ErrBadNumber is returned when a numeral token cannot be spelled.
	ErrBadNumber = errors.New("bad number")
	// ErrParse is returned when the morphology cannot analyse a word.
	ErrParse = errors.New("unable to parse word")
	// ErrBadPhrase is returned by strict composition on the first phrase
	// carrying an issue.
	ErrBadPhrase = errors.New("bad phrase")
)

// PhraseError reports the phrase that stopped a strict composition.
type PhraseError struct {
	Phrase *Phrase
}

func (e *PhraseError) Error() string {
	p := e.Phrase
	return fmt.Sprintf("bad phrase %d/%d %q: %v", p.Index+1, p.LastIndex+1, p.String(), p.Issues)
}

func (e *PhraseError) Unwrap() error {
	return ErrBadPhrase
}
