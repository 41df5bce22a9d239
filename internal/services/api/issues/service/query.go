package service

import (
	"strings"

	dom "hitch/internal/services/api/issues/domain"
)

const baseQuery = "is:issue is:open"

// BuildQuery renders filters as a GitHub search query
// Keyword text is unscoped full text, so it goes before the qualifiers
// Values are used verbatim; inputs are validated at the edge
func BuildQuery(f dom.Filters) string {
	var b strings.Builder
	if kw := strings.TrimSpace(f.Keyword); kw != "" {
		b.WriteString(kw)
		b.WriteByte(' ')
	}
	b.WriteString(baseQuery)

	if f.Language != "" {
		b.WriteString(" language:")
		b.WriteString(f.Language)
	}
	if f.UpdatedAt != "" {
		b.WriteString(" updated:>")
		b.WriteString(f.UpdatedAt)
	}
	for _, l := range f.Labels {
		b.WriteString(" label:")
		b.WriteString(quoteLabel(l))
	}
	return b.String()
}

// quoteLabel wraps multi-word labels like "good first issue" in double quotes
func quoteLabel(l string) string {
	if strings.Contains(l, " ") {
		return `"` + l + `"`
	}
	return l
}
