// Package domain holds the issue search types shared by the service, transport and CLI
package domain

import "time"

// Filters are the user supplied search constraints; zero values mean "no constraint"
type Filters struct {
	Keyword   string
	Language  string
	Labels    []string
	UpdatedAt string // YYYY-MM-DD, matched strictly after
	Page      int
}

// PageOrDefault returns Page, or 1 when it is absent or non-positive
func (f Filters) PageOrDefault() int {
	if f.Page < 1 {
		return 1
	}
	return f.Page
}

// Repository identifies a repository by (owner, name)
// Language is nil while unresolved, which is distinct from an empty string
type Repository struct {
	Name     string  `json:"name"`
	Owner    string  `json:"owner"`
	URL      string  `json:"url"`
	Language *string `json:"language"`
}

// FullName returns "owner/name"
func (r Repository) FullName() string { return r.Owner + "/" + r.Name }

// Difficulty grades an issue for newcomers
type Difficulty string

const (
	// DifficultyBeginner is assigned to every issue; nothing infers the others yet
	DifficultyBeginner Difficulty = "Beginner"
	// DifficultyIntermediate is reserved
	DifficultyIntermediate Difficulty = "Intermediate"
	// DifficultyAdvanced is reserved
	DifficultyAdvanced Difficulty = "Advanced"
)

// Issue is the normalized search hit; Repository is never nil
type Issue struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	URL        string      `json:"url"`
	Body       string      `json:"body,omitempty"`
	Repository *Repository `json:"repository"`
	Labels     []string    `json:"labels"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
	Difficulty Difficulty  `json:"difficulty"`
}

// Pagination is the raw paging signal: HasNext iff Page*PerPage < Total
type Pagination struct {
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	HasNext bool `json:"hasNext"`
}

// Navigation is Pagination clamped to what upstream will actually serve
type Navigation struct {
	MaxPage   int   `json:"maxPage"`
	CanGoNext bool  `json:"canGoNext"`
	CanGoPrev bool  `json:"canGoPrev"`
	Pages     []int `json:"pages"`

	// ShowFirst and ShowLast ask for a jump to page 1 or MaxPage outside the window
	ShowFirst bool `json:"showFirst"`
	ShowLast  bool `json:"showLast"`

	// AtCap is set on the last retrievable page when total exceeds the result cap
	AtCap bool `json:"atCap"`
}

// SearchResult is one page of issues plus its paging state
type SearchResult struct {
	Issues     []Issue    `json:"issues"`
	Pagination Pagination `json:"pagination"`
	Navigation Navigation `json:"navigation"`
	Query      string     `json:"query"`

	// Dropped counts raw items discarded for lack of repository info
	Dropped int `json:"dropped,omitempty"`
}
