package service

import (
	"hitch/internal/core/normalize"
	dom "hitch/internal/services/api/issues/domain"
)

// Refine keeps issues whose title or repository name contains term
// Matching folds case, width and accents; a blank term keeps everything
func Refine(issues []dom.Issue, term string) []dom.Issue {
	m := normalize.NewMatcher(term)
	if m.Blank() {
		return issues
	}
	out := make([]dom.Issue, 0, len(issues))
	for _, iss := range issues {
		if m.Match(iss.Title, iss.Repository.Name) {
			out = append(out, iss)
		}
	}
	return out
}
