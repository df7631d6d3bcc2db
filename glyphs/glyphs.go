// Package glyphs describes the characters a rendering font can draw and
// drops everything else from text.
package glyphs

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/rangetable"
)

// Set is an immutable set of supported runes.
type Set struct {
	table *unicode.RangeTable
}

// defaultTable covers ASCII, Latin-1, basic Cyrillic, typographic dashes,
// quotes and ellipsis, and the numero sign.
var defaultTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0020, Hi: 0x007e, Stride: 1},
		{Lo: 0x00a0, Hi: 0x00ff, Stride: 1},
		{Lo: 0x0400, Hi: 0x045f, Stride: 1},
		{Lo: 0x2010, Hi: 0x2026, Stride: 1},
		{Lo: 0x2116, Hi: 0x2116, Stride: 1},
	},
	LatinOffset: 2,
}

// Default returns the built-in glyph set.
func Default() *Set {
	return &Set{table: defaultTable}
}

// New returns a set made of the runes in chars.
func New(chars string) *Set {
	return &Set{table: rangetable.New([]rune(chars)...)}
}

// Load reads a glyph list file. Each non-empty line holds a range
// "U+0400-U+045F", a single code point "U+2116", or literal characters.
// Lines starting with "#" are comments.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open glyph list: %w", err)
	}
	defer f.Close()

	var runes []rune
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.HasPrefix(line, "U+") {
			runes = append(runes, []rune(line)...)
			continue
		}
		lo, hi, isRange := strings.Cut(line, "-")
		first, err := codePoint(lo)
		if err != nil {
			return nil, fmt.Errorf("glyph list line %d: %w", n, err)
		}
		last := first
		if isRange {
			if last, err = codePoint(hi); err != nil {
				return nil, fmt.Errorf("glyph list line %d: %w", n, err)
			}
		}
		if last < first {
			return nil, fmt.Errorf("glyph list line %d: empty range %q", n, line)
		}
		for r := first; r <= last; r++ {
			runes = append(runes, r)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read glyph list: %w", err)
	}
	if len(runes) == 0 {
		return nil, fmt.Errorf("glyph list %s is empty", path)
	}
	return &Set{table: rangetable.New(runes...)}, nil
}

func codePoint(s string) (rune, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(s), "U+"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad code point %q", s)
	}
	return rune(v), nil
}

// Contains reports whether r can be rendered.
func (s *Set) Contains(r rune) bool {
	return unicode.Is(s.table, r)
}

// Strip composes text to NFC and drops every rune outside the set.
func (s *Set) Strip(text string) string {
	text = norm.NFC.String(text)
	return strings.Map(func(r rune) rune {
		if s.Contains(r) {
			return r
		}
		return -1
	}, text)
}

// Clean strips text and trims surrounding whitespace.
func (s *Set) Clean(text string) string {
	return strings.TrimSpace(s.Strip(text))
}
