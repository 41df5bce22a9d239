package service

import (
	"context"

	"hitch/internal/platform/logger"
	dom "hitch/internal/services/api/issues/domain"

	"golang.org/x/sync/errgroup"
)

type repoKey struct{ owner, name string }

// PrimaryLanguage returns the language with the most bytes
// Ties go to the lexicographically smaller name so results are stable
func PrimaryLanguage(bytes map[string]int64) (string, bool) {
	var (
		best  string
		bestN int64 = -1
	)
	for lang, n := range bytes {
		if n > bestN || (n == bestN && lang < best) {
			best, bestN = lang, n
		}
	}
	return best, bestN >= 0
}

// enrichLanguages resolves the language of each distinct repository that lacks one
// Every lookup runs to completion; a failed or empty lookup leaves its repository unresolved
func (s *Svc) enrichLanguages(ctx context.Context, issues []dom.Issue) []dom.Issue {
	var keys []repoKey
	seen := map[repoKey]bool{}
	for _, iss := range issues {
		r := iss.Repository
		k := repoKey{r.Owner, r.Name}
		if r.Language != nil || seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return issues
	}

	log := logger.C(ctx)
	langs := make([]*string, len(keys))

	var g errgroup.Group
	g.SetLimit(s.cfg.EnrichConcurrency)
	for i, k := range keys {
		g.Go(func() error {
			bytes, err := s.gh.RepoLanguages(ctx, k.owner, k.name)
			if err != nil {
				log.Warn().Err(err).Str("repo", k.owner+"/"+k.name).Msg("language lookup failed; leaving unresolved")
				return nil
			}
			if lang, ok := PrimaryLanguage(bytes); ok {
				langs[i] = &lang
				return nil
			}
			log.Debug().Str("repo", k.owner+"/"+k.name).Msg("repository reports no languages")
			return nil
		})
	}
	_ = g.Wait()

	resolved := make(map[repoKey]*string, len(keys))
	for i, k := range keys {
		if langs[i] != nil {
			resolved[k] = langs[i]
		}
	}

	out := make([]dom.Issue, len(issues))
	copy(out, issues)
	for i := range out {
		r := out[i].Repository
		lang, ok := resolved[repoKey{r.Owner, r.Name}]
		if !ok || r.Language != nil {
			continue
		}
		cp := *r
		cp.Language = lang
		out[i].Repository = &cp
	}

	log.Debug().Int("repos", len(keys)).Int("resolved", len(resolved)).Msg("language enrichment done")
	return out
}
