package jpoetry

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Genre is one of the supported fixed poem forms.
type Genre int

const (
	Katauta Genre = iota
	Hokku
	Tanka
	Bussokusekika
	Sedoka
)

var genres = [...]struct {
	name    string
	title   string
	pattern []int
}{
	Katauta:       {"katauta", "Катаута", []int{5, 7, 7}},
	Hokku:         {"hokku", "Хокку", []int{5, 7, 5}},
	Tanka:         {"tanka", "Танка", []int{5, 7, 5, 7, 7}},
	Bussokusekika: {"bussokusekika", "Бусоку-сёкитаи", []int{5, 7, 5, 7, 7, 7}},
	Sedoka:        {"sedoka", "Сэдока", []int{5, 7, 7, 5, 7, 7}},
}

// Genres lists every genre in declaration order.
func Genres() []Genre {
	return []Genre{Katauta, Hokku, Tanka, Bussokusekika, Sedoka}
}

func (g Genre) valid() bool {
	return g >= 0 && int(g) < len(genres)
}

// String returns the display title, e.g. "Хокку".
func (g Genre) String() string {
	if !g.valid() {
		return fmt.Sprintf("Genre(%d)", int(g))
	}
	return genres[g].title
}

// Name returns the identifier, e.g. "hokku".
func (g Genre) Name() string {
	if !g.valid() {
		return ""
	}
	return genres[g].name
}

// Pattern returns a copy of the canonical syllable pattern.
func (g Genre) Pattern() []int {
	if !g.valid() {
		return nil
	}
	return slices.Clone(genres[g].pattern)
}

// MarshalText lets genres appear by name in JSON.
func (g Genre) MarshalText() ([]byte, error) {
	if !g.valid() {
		return nil, fmt.Errorf("unknown genre %d", int(g))
	}
	return []byte(g.Name()), nil
}

// UnmarshalText accepts the identifiers produced by MarshalText.
func (g *Genre) UnmarshalText(text []byte) error {
	parsed, ok := ParseGenre(string(text))
	if !ok {
		return fmt.Errorf("unknown genre %q", text)
	}
	*g = parsed
	return nil
}

// ParseGenre looks a genre up by identifier.
func ParseGenre(name string) (Genre, bool) {
	for _, g := range Genres() {
		if g.Name() == name {
			return g, true
		}
	}
	return 0, false
}

// Shape is a genre with the syllable count of each phrase.
type Shape struct {
	Genre     Genre
	Syllables []int
}

// Total returns the sum of the pattern.
func (s Shape) Total() int {
	total := 0
	for _, n := range s.Syllables {
		total += n
	}
	return total
}

// ErrBadShape is returned by NewCatalog for empty or non-positive patterns.
var ErrBadShape = errors.New("bad poem shape")

// Catalog indexes shapes by total syllables and by phrase count. It is
// immutable once built.
type Catalog struct {
	shapes   []Shape
	byTotal  map[int][]Shape
	byLines  map[int][]Shape
	minWords int
	maxWords int
}

// NewCatalog builds the indices. Shapes are ordered by ascending total,
// keeping the given order among equal totals.
func NewCatalog(shapes ...Shape) (*Catalog, error) {
	if len(shapes) == 0 {
		return nil, fmt.Errorf("%w: no shapes", ErrBadShape)
	}
	c := &Catalog{
		byTotal: make(map[int][]Shape),
		byLines: make(map[int][]Shape),
	}
	for _, s := range shapes {
		if len(s.Syllables) == 0 {
			return nil, fmt.Errorf("%w: %s has an empty pattern", ErrBadShape, s.Genre.Name())
		}
		if slices.ContainsFunc(s.Syllables, func(n int) bool { return n <= 0 }) {
			return nil, fmt.Errorf("%w: %s has a non-positive count in %v", ErrBadShape, s.Genre.Name(), s.Syllables)
		}
		c.shapes = append(c.shapes, Shape{Genre: s.Genre, Syllables: slices.Clone(s.Syllables)})
	}
	slices.SortStableFunc(c.shapes, func(a, b Shape) int { return a.Total() - b.Total() })

	c.minWords = len(c.shapes[0].Syllables)
	for _, s := range c.shapes {
		c.byTotal[s.Total()] = append(c.byTotal[s.Total()], s)
		c.byLines[len(s.Syllables)] = append(c.byLines[len(s.Syllables)], s)
		c.minWords = min(c.minWords, len(s.Syllables))
		c.maxWords = max(c.maxWords, s.Total())
	}
	return c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	shapes := make([]Shape, 0, len(genres))
	for _, g := range Genres() {
		shapes = append(shapes, Shape{Genre: g, Syllables: g.Pattern()})
	}
	c, err := NewCatalog(shapes...)
	if err != nil {
		panic(err)
	}
	return c
})

// DefaultCatalog returns the catalog of all built-in genres.
func DefaultCatalog() *Catalog {
	return defaultCatalog()
}

// Shapes returns every shape ordered by ascending total.
func (c *Catalog) Shapes() []Shape {
	return cloneShapes(c.shapes)
}

// ByTotal returns the shapes whose syllables sum to n.
func (c *Catalog) ByTotal(n int) []Shape {
	return cloneShapes(c.byTotal[n])
}

// ByLines returns the shapes with n phrases.
func (c *Catalog) ByLines(n int) []Shape {
	return cloneShapes(c.byLines[n])
}

// MinWords is the fewest phrases of any shape: shorter texts cannot be poems.
func (c *Catalog) MinWords() int {
	return c.minWords
}

// MaxWords is the largest syllable total, used as a word-count bound.
func (c *Catalog) MaxWords() int {
	return c.maxWords
}

func cloneShapes(shapes []Shape) []Shape {
	if len(shapes) == 0 {
		return nil
	}
	out := make([]Shape, len(shapes))
	for i, s := range shapes {
		out[i] = Shape{Genre: s.Genre, Syllables: slices.Clone(s.Syllables)}
	}
	return out
}
