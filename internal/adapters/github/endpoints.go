package github

import (
	"context"
	"net/url"

	perr "hitch/internal/platform/errors"

	"github.com/google/go-querystring/query"
)

// SearchPageSize is the page size GitHub search is queried with
const SearchPageSize = 30

type searchParams struct {
	Q       string `url:"q"`
	Page    int    `url:"page"`
	PerPage int    `url:"per_page"`
}

// SearchIssues performs GET /search/issues?q=...&page=...&per_page=...
func (c *Client) SearchIssues(ctx context.Context, q string, page, perPage int) (SearchResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = SearchPageSize
	}
	vals, err := query.Values(searchParams{Q: q, Page: page, PerPage: perPage})
	if err != nil {
		return SearchResponse{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "encode search params")
	}

	var out SearchResponse
	if err := c.getJSON(ctx, "/search/issues", vals, &out); err != nil {
		return SearchResponse{}, err
	}
	return out, nil
}

// RepoLanguages performs GET /repos/{owner}/{repo}/languages, a map of language to bytes
func (c *Client) RepoLanguages(ctx context.Context, owner, repo string) (map[string]int64, error) {
	if owner == "" || repo == "" {
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "owner and repo are required")
	}
	path := "/repos/" + url.PathEscape(owner) + "/" + url.PathEscape(repo) + "/languages"

	out := map[string]int64{}
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RateLimit performs GET /rate_limit, which does not count against the quota
func (c *Client) RateLimit(ctx context.Context) (RateLimitResponse, error) {
	var out RateLimitResponse
	if err := c.getJSON(ctx, "/rate_limit", nil, &out); err != nil {
		return RateLimitResponse{}, err
	}
	return out, nil
}

// Ping checks that GitHub answers and accepts our credentials
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.RateLimit(ctx)
	return err
}
