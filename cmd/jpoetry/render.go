package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jpoetry/jpoetry"
)

type renderer struct {
	title lipgloss.Style
	body  lipgloss.Style
	issue lipgloss.Style
	muted lipgloss.Style
}

// newRenderer binds the styles to w so colors follow its terminal.
func newRenderer(w io.Writer) *renderer {
	r := lipgloss.NewRenderer(w)
	return &renderer{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		body: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1),
		issue: r.NewStyle().Foreground(lipgloss.Color("214")),
		muted: r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (r *renderer) poem(p *jpoetry.Poem, describe bool) string {
	lines := make([]string, 0, len(p.Phrases))
	for _, ph := range p.Phrases {
		if describe {
			lines = append(lines, ph.Describe())
		} else {
			lines = append(lines, ph.String())
		}
	}
	out := []string{r.title.Render(p.Genre.String()), r.body.Render(strings.Join(lines, "\n"))}
	for _, ph := range p.Phrases {
		for _, issue := range ph.Issues {
			out = append(out, r.issue.Render(fmt.Sprintf("  %d: %s", ph.Index+1, issue)))
		}
	}
	return strings.Join(out, "\n")
}

func (r *renderer) genre(g jpoetry.GenreInfo) string {
	return r.title.Render(g.Title) + r.muted.Render(strings.TrimPrefix(g.String(), g.Title))
}
