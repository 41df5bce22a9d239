// Package service runs issue searches against GitHub
package service

import (
	"context"
	"errors"

	"hitch/internal/adapters/github"
	perr "hitch/internal/platform/errors"
	"hitch/internal/platform/logger"
	dom "hitch/internal/services/api/issues/domain"
)

// GitHub is the upstream the service reads from; *github.Client satisfies it
type GitHub interface {
	SearchIssues(ctx context.Context, q string, page, perPage int) (github.SearchResponse, error)
	RepoLanguages(ctx context.Context, owner, repo string) (map[string]int64, error)
}

// Config for the issues service
type Config struct {
	PerPage           int
	ResultCap         int
	Window            int
	Enrich            bool
	EnrichConcurrency int
}

// Service defines the issues service contract
type Service interface {
	dom.ServicePort
}

// Svc implements the issues service
type Svc struct {
	gh  GitHub
	cfg Config
}

// New constructs an issues service
func New(gh GitHub, cfg Config) *Svc {
	if gh == nil {
		panic("issues.Service requires a non nil GitHub client")
	}
	if cfg.PerPage <= 0 {
		cfg.PerPage = github.SearchPageSize
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.EnrichConcurrency <= 0 {
		cfg.EnrichConcurrency = 4
	}
	return &Svc{gh: gh, cfg: cfg}
}

// Config returns the effective configuration
func (s *Svc) Config() Config { return s.cfg }

// Search runs one upstream search for f and normalizes the page
func (s *Svc) Search(ctx context.Context, f dom.Filters) (dom.SearchResult, error) {
	page := f.PageOrDefault()
	q := BuildQuery(f)
	log := logger.C(ctx).With().Str("query", q).Int("page", page).Logger()

	raw, err := s.gh.SearchIssues(ctx, q, page, s.cfg.PerPage)
	if err != nil {
		return dom.SearchResult{}, s.translate(&log, err)
	}

	issues, dropped := MapIssues(raw.Items)
	if dropped > 0 {
		log.Debug().Int("dropped", dropped).Int("items", len(raw.Items)).Msg("dropped items without repository info")
	}
	if s.cfg.Enrich {
		issues = s.enrichLanguages(ctx, issues)
	}

	return dom.SearchResult{
		Issues:     issues,
		Pagination: NewPagination(page, s.cfg.PerPage, raw.TotalCount),
		Navigation: ComputeNavigation(page, s.cfg.PerPage, raw.TotalCount, s.cfg.ResultCap, s.cfg.Window),
		Query:      q,
		Dropped:    dropped,
	}, nil
}

// translate logs the real cause and returns an error with a fixed public message
func (s *Svc) translate(log *logger.Logger, err error) error {
	var ue *github.UpstreamAPIError
	switch {
	case errors.As(err, &ue):
		log.Error().
			Int("status", ue.Status).
			Str("status_text", ue.StatusText).
			Str("body", ue.Body).
			Bool("rate_limited", ue.RateLimited()).
			Msg("github search failed")
		return perr.Wrap(err, perr.ErrorCodeUpstream, dom.MsgUpstreamAPI)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded),
		perr.IsCode(err, perr.ErrorCodeUnavailable):
		log.Error().Err(err).Msg("github unreachable")
		return perr.Wrap(err, perr.ErrorCodeUnavailable, dom.MsgFetchFailed)
	default:
		log.Error().Err(err).Msg("github search failed")
		return perr.Wrap(err, perr.ErrorCodeUnknown, dom.MsgFetchFailed)
	}
}
