package github

import "time"

// SearchResponse is the body of GET /search/issues
type SearchResponse struct {
	TotalCount        int        `json:"total_count"`
	IncompleteResults bool       `json:"incomplete_results"`
	Items             []RawIssue `json:"items"`
}

// RawIssue is a partial search hit with the fields the mapper reads
type RawIssue struct {
	ID            int64          `json:"id"`
	Number        int            `json:"number"`
	Title         string         `json:"title"`
	Body          *string        `json:"body"`
	HTMLURL       string         `json:"html_url"`
	RepositoryURL string         `json:"repository_url"`
	Labels        []RawLabel     `json:"labels"`
	Comments      int            `json:"comments"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	Repository    *RawRepository `json:"repository,omitempty"`
}

// RawLabel is a partial label document
type RawLabel struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// RawRepository is the inline repository shape some payloads carry
// Language is nil when the field is null or absent and non-nil (maybe "") otherwise
type RawRepository struct {
	Name     string    `json:"name"`
	FullName string    `json:"full_name"`
	HTMLURL  string    `json:"html_url"`
	Owner    *RawOwner `json:"owner"`
	Language *string   `json:"language"`
}

// RawOwner is a partial user or org document
type RawOwner struct {
	Login string `json:"login"`
}

// RateLimitResponse is the body of GET /rate_limit
type RateLimitResponse struct {
	Resources struct {
		Core   RateBucket `json:"core"`
		Search RateBucket `json:"search"`
	} `json:"resources"`
}

// RateBucket is one quota bucket
type RateBucket struct {
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	Reset     int64 `json:"reset"`
}

// ResetAt returns the bucket reset as a UTC time
func (b RateBucket) ResetAt() time.Time {
	if b.Reset <= 0 {
		return time.Time{}
	}
	return time.Unix(b.Reset, 0).UTC()
}
