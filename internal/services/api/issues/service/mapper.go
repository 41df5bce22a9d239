package service

import (
	"regexp"
	"strconv"

	"hitch/internal/adapters/github"
	dom "hitch/internal/services/api/issues/domain"
)

const webBaseURL = "https://github.com"

// repository_url looks like https://api.github.com/repos/{owner}/{name}
var repoURLPattern = regexp.MustCompile(`/repos/([^/?#]+)/([^/?#]+)/?$`)

// RepositoryRef is how a raw item points at its repository: InlineRef or URLRef
type RepositoryRef interface {
	repository() *dom.Repository
}

// InlineRef is the embedded repository object some payloads carry
type InlineRef struct{ Raw *github.RawRepository }

func (r InlineRef) repository() *dom.Repository {
	owner := r.Raw.Owner.Login
	url := r.Raw.HTMLURL
	if url == "" {
		url = webBaseURL + "/" + owner + "/" + r.Raw.Name
	}
	var lang *string
	if r.Raw.Language != nil {
		l := *r.Raw.Language
		lang = &l
	}
	return &dom.Repository{Name: r.Raw.Name, Owner: owner, URL: url, Language: lang}
}

// URLRef is owner and name recovered from repository_url; it never knows the language
type URLRef struct{ Owner, Name string }

func (r URLRef) repository() *dom.Repository {
	return &dom.Repository{
		Name:  r.Name,
		Owner: r.Owner,
		URL:   webBaseURL + "/" + r.Owner + "/" + r.Name,
	}
}

// ResolveRef picks the repository shape of a raw item
// The inline object wins when it names both owner and repo; repository_url is the fallback
func ResolveRef(it github.RawIssue) (RepositoryRef, bool) {
	if rr := it.Repository; rr != nil && rr.Name != "" && rr.Owner != nil && rr.Owner.Login != "" {
		return InlineRef{Raw: rr}, true
	}
	if m := repoURLPattern.FindStringSubmatch(it.RepositoryURL); m != nil {
		return URLRef{Owner: m[1], Name: m[2]}, true
	}
	return nil, false
}

// MapIssue converts one raw item, or reports false when it has no usable repository
func MapIssue(it github.RawIssue) (dom.Issue, bool) {
	ref, ok := ResolveRef(it)
	if !ok {
		return dom.Issue{}, false
	}

	labels := make([]string, 0, len(it.Labels))
	for _, l := range it.Labels {
		labels = append(labels, l.Name)
	}
	var body string
	if it.Body != nil {
		body = *it.Body
	}

	return dom.Issue{
		ID:         strconv.FormatInt(it.ID, 10),
		Title:      it.Title,
		URL:        it.HTMLURL,
		Body:       body,
		Repository: ref.repository(),
		Labels:     labels,
		CreatedAt:  it.CreatedAt,
		UpdatedAt:  it.UpdatedAt,
		Difficulty: dom.DifficultyBeginner,
	}, true
}

// MapIssues maps items in order and returns how many were dropped
func MapIssues(items []github.RawIssue) ([]dom.Issue, int) {
	out := make([]dom.Issue, 0, len(items))
	for _, it := range items {
		if iss, ok := MapIssue(it); ok {
			out = append(out, iss)
		}
	}
	return out, len(items) - len(out)
}
