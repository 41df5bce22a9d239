package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"hitch/internal/core/normalize"
	str "hitch/internal/platform/strings"
	"hitch/internal/services/api/issues/domain"

	"github.com/charmbracelet/lipgloss"
)

const titleWidth = 96

type renderOptions struct {
	Match         string
	Authenticated bool
}

type palette struct {
	header  lipgloss.Style
	title   lipgloss.Style
	repo    lipgloss.Style
	lang    lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	current lipgloss.Style
	warn    lipgloss.Style
}

// newPalette binds styles to w so colors are dropped when w is not a terminal
func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		header:  r.NewStyle().Bold(true),
		title:   r.NewStyle().Bold(true),
		repo:    r.NewStyle().Foreground(lipgloss.Color("39")),
		lang:    r.NewStyle().Foreground(lipgloss.Color("214")),
		label:   r.NewStyle().Foreground(lipgloss.Color("141")),
		muted:   r.NewStyle().Faint(true),
		current: r.NewStyle().Bold(true).Reverse(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// renderResult prints one page of issues followed by the page bar
// every upstream string passes through normalize.Line before it reaches the terminal
func renderResult(w io.Writer, res domain.SearchResult, o renderOptions) error {
	p := newPalette(w)
	var b strings.Builder

	b.WriteString(p.header.Render(fmt.Sprintf("%d open issues", res.Pagination.Total)))
	b.WriteString(p.muted.Render("  " + normalize.Line(res.Query)))
	b.WriteString("\n\n")

	if len(res.Issues) == 0 {
		if o.Match != "" {
			b.WriteString(p.muted.Render(fmt.Sprintf("nothing on this page matches %q", normalize.Line(o.Match))))
		} else {
			b.WriteString(p.muted.Render("no issues found"))
		}
		b.WriteString("\n")
	}

	for _, iss := range res.Issues {
		b.WriteString(p.title.Render(str.Truncate(normalize.Line(iss.Title), titleWidth)))
		b.WriteString("\n  ")

		if iss.Repository != nil {
			b.WriteString(p.repo.Render(normalize.Line(iss.Repository.FullName())))
			if lang := str.Deref(iss.Repository.Language, ""); lang != "" {
				b.WriteString(" ")
				b.WriteString(p.lang.Render(normalize.Line(lang)))
			}
		}
		b.WriteString(p.muted.Render("  updated " + iss.UpdatedAt.UTC().Format("2006-01-02")))

		if len(iss.Labels) > 0 {
			labels := make([]string, 0, len(iss.Labels))
			for _, l := range iss.Labels {
				labels = append(labels, "["+normalize.Line(l)+"]")
			}
			b.WriteString("\n  ")
			b.WriteString(p.label.Render(strings.Join(labels, " ")))
		}
		b.WriteString("\n  ")
		b.WriteString(p.muted.Render(normalize.Line(iss.URL)))
		b.WriteString("\n\n")
	}

	b.WriteString(pageBar(p, res.Pagination.Page, res.Navigation))
	b.WriteString("\n")

	if res.Navigation.AtCap {
		b.WriteString(p.warn.Render("GitHub search stops here; narrow the filters to see more"))
		b.WriteString("\n")
	}
	if res.Dropped > 0 {
		b.WriteString(p.muted.Render(fmt.Sprintf("%d results without repository info were skipped", res.Dropped)))
		b.WriteString("\n")
	}
	if !o.Authenticated {
		b.WriteString(p.muted.Render("unauthenticated: set GITHUB_TOKEN for a higher rate limit"))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// pageBar renders "‹ 1 … 4 5 [6] 7 8 … 34 ›" from the navigation window
func pageBar(p palette, page int, nav domain.Navigation) string {
	if len(nav.Pages) == 0 {
		return ""
	}
	parts := make([]string, 0, len(nav.Pages)+6)

	if nav.CanGoPrev {
		parts = append(parts, "‹")
	}
	if nav.ShowFirst {
		parts = append(parts, "1")
		if nav.Pages[0] > 2 {
			parts = append(parts, "…")
		}
	}
	for _, n := range nav.Pages {
		s := strconv.Itoa(n)
		if n == page {
			s = p.current.Render("[" + s + "]")
		}
		parts = append(parts, s)
	}
	if nav.ShowLast {
		if nav.Pages[len(nav.Pages)-1] < nav.MaxPage-1 {
			parts = append(parts, "…")
		}
		parts = append(parts, strconv.Itoa(nav.MaxPage))
	}
	if nav.CanGoNext {
		parts = append(parts, "›")
	}
	return strings.Join(parts, " ")
}
