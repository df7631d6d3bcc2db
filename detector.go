package jpoetry

import (
	"errors"
	"fmt"
	"iter"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/jpoetry/jpoetry/glyphs"
)

// Paragraph is the detection result for one blank-line separated block.
type Paragraph struct {
	Lines []LineInfo `json:"lines"`
	Poems []*Poem    `json:"poems"`
}

// Detector finds poems in text.
type Detector struct {
	morph    Morphology
	catalog  *Catalog
	filter   CharFilter
	speller  *Speller
	counter  *Counter
	composer *Composer
	logger   *zap.Logger
}

// Option configures a Detector.
type Option func(*Detector)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(d *Detector) {
		d.logger = l
	}
}

// WithCatalog replaces the default genre catalog.
func WithCatalog(c *Catalog) Option {
	return func(d *Detector) {
		d.catalog = c
	}
}

// WithFilter replaces the default glyph filter.
func WithFilter(f CharFilter) Option {
	return func(d *Detector) {
		d.filter = f
	}
}

// NewDetector returns a detector analysing words with m.
func NewDetector(m Morphology, opts ...Option) *Detector {
	d := &Detector{
		morph:   m,
		catalog: DefaultCatalog(),
		filter:  glyphs.Default(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.speller = NewSpeller(m)
	d.counter = NewCounter(d.speller)
	d.composer = NewComposer(d.filter)
	return d
}

// Speller returns the detector's numeral speller.
func (d *Detector) Speller() *Speller {
	return d.speller
}

// Counter returns the detector's syllable counter.
func (d *Detector) Counter() *Counter {
	return d.counter
}

// Catalog returns the detector's genre catalog.
func (d *Detector) Catalog() *Catalog {
	return d.catalog
}

var reBlankLine = regexp.MustCompile(`\n[ \t\r]*\n`)

// splitParagraphs splits text on blank lines and drops empty lines.
func splitParagraphs(text string) [][]string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var paragraphs [][]string
	for _, block := range reBlankLine.Split(text, -1) {
		var lines []string
		for _, line := range strings.Split(block, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			paragraphs = append(paragraphs, lines)
		}
	}
	return paragraphs
}

// Paragraphs detects poems paragraph by paragraph. A paragraph of several
// lines is matched line by line against shapes with as many phrases; a
// single line is reflowed into every shape with its syllable total. In
// strict mode only flawless poems are kept. A single line with fewer
// words than the shortest shape or more than MaxWords is not annotated:
// its Paragraph has neither Lines nor Poems.
func (d *Detector) Paragraphs(text string, strict bool) ([]Paragraph, error) {
	var result []Paragraph
	for _, lines := range splitParagraphs(text) {
		p, err := d.paragraph(lines, strict)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

func (d *Detector) paragraph(lines []string, strict bool) (Paragraph, error) {
	if len(lines) > 1 {
		return d.lineParagraph(lines, strict)
	}

	var p Paragraph
	words := strings.Fields(lines[0])
	if len(words) < d.catalog.MinWords() || len(words) > d.catalog.MaxWords() {
		return p, nil
	}
	infos, total, err := d.counter.Annotate(words)
	if err != nil {
		return p, err
	}
	p.Lines = []LineInfo{{Words: infos, Syllables: total}}

	for _, shape := range d.catalog.ByTotal(total) {
		phrases, issues, err := d.composer.Compose(infos, shape, strict)
		if poem, err := d.poem(shape, phrases, issues, err); err != nil {
			return p, err
		} else if poem != nil {
			p.Poems = append(p.Poems, poem)
		}
	}
	return p, nil
}

func (d *Detector) lineParagraph(lines []string, strict bool) (Paragraph, error) {
	var p Paragraph
	for _, line := range lines {
		infos, total, err := d.counter.Annotate(strings.Fields(line))
		if err != nil {
			return p, err
		}
		p.Lines = append(p.Lines, LineInfo{Words: infos, Syllables: total})
	}

	for _, shape := range d.catalog.ByLines(len(lines)) {
		phrases, issues, err := d.composer.ComposeLines(p.Lines, shape, strict)
		if poem, err := d.poem(shape, phrases, issues, err); err != nil {
			return p, err
		} else if poem != nil {
			p.Poems = append(p.Poems, poem)
		}
	}
	return p, nil
}

// poem turns a composition result into a Poem. A rejected shape yields
// neither a poem nor an error.
func (d *Detector) poem(shape Shape, phrases []*Phrase, issues []Issue, err error) (*Poem, error) {
	if errors.Is(err, ErrBadPhrase) {
		d.logger.Debug("Shape rejected",
			zap.String("genre", shape.Genre.Name()),
			zap.Error(err))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &Poem{Genre: shape.Genre, Phrases: phrases, Issues: len(issues)}, nil
}

// DetectPoems returns every candidate poem and the annotated lines of all
// paragraphs.
func (d *Detector) DetectPoems(text string, strict bool) ([]*Poem, []LineInfo, error) {
	paragraphs, err := d.Paragraphs(text, strict)
	if err != nil {
		return nil, nil, err
	}
	var (
		poems []*Poem
		lines []LineInfo
	)
	for _, p := range paragraphs {
		poems = append(poems, p.Poems...)
		lines = append(lines, p.Lines...)
	}
	return poems, lines, nil
}

// DetectPoem returns the first flawless poem in text, or nil, with the
// annotated lines of the paragraphs it went through. Like IterPoems it
// logs and skips paragraphs that cannot be annotated, so a numeral it
// cannot spell means no poem rather than an error.
func (d *Detector) DetectPoem(text string) (*Poem, []LineInfo, error) {
	var lines []LineInfo
	for i, paragraph := range splitParagraphs(text) {
		p, err := d.paragraph(paragraph, true)
		if err != nil {
			d.skip(i, err)
			continue
		}
		lines = append(lines, p.Lines...)
		for _, poem := range p.Poems {
			if poem.Issues == 0 {
				return poem, lines, nil
			}
		}
	}
	return nil, lines, nil
}

func (d *Detector) skip(paragraph int, err error) {
	d.logger.Warn("Skipping paragraph",
		zap.Int("paragraph", paragraph),
		zap.Error(err))
}

// IterPoems yields every flawless poem of every paragraph. Paragraphs
// that cannot be annotated are skipped.
func (d *Detector) IterPoems(text string) iter.Seq[*Poem] {
	return func(yield func(*Poem) bool) {
		for i, lines := range splitParagraphs(text) {
			p, err := d.paragraph(lines, false)
			if err != nil {
				d.skip(i, err)
				continue
			}
			for _, poem := range p.Poems {
				if poem.Issues == 0 && !yield(poem) {
					return
				}
			}
		}
	}
}

// BestPoem returns the poem with the fewest issues, the earliest on ties.
func BestPoem(poems []*Poem) *Poem {
	var best *Poem
	for _, p := range poems {
		if best == nil || p.Issues < best.Issues {
			best = p
		}
	}
	return best
}

// GenreInfo describes a genre for help screens.
type GenreInfo struct {
	Genre   Genre  `json:"genre"`
	Title   string `json:"title"`
	Pattern []int  `json:"pattern"`
	Total   int    `json:"total"`
	// Unit is "слог" agreed with Total, e.g. "слогов".
	Unit string `json:"unit"`
}

func (g GenreInfo) String() string {
	parts := make([]string, len(g.Pattern))
	for i, n := range g.Pattern {
		parts[i] = fmt.Sprint(n)
	}
	return fmt.Sprintf("%s: %s (%d %s)", g.Title, strings.Join(parts, "-"), g.Total, g.Unit)
}

// GenreSheet describes every shape of the catalog by ascending total.
func (d *Detector) GenreSheet() []GenreInfo {
	shapes := d.catalog.Shapes()
	sheet := make([]GenreInfo, 0, len(shapes))
	for _, s := range shapes {
		sheet = append(sheet, GenreInfo{
			Genre:   s.Genre,
			Title:   s.Genre.String(),
			Pattern: s.Syllables,
			Total:   s.Total(),
			Unit:    AgreeWithNumber(d.morph, "слог", s.Total()),
		})
	}
	return sheet
}
